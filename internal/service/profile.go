package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
)

type ProfileService struct {
	repository ProfileRepository
}

func NewProfileService(repository ProfileRepository) *ProfileService {
	return &ProfileService{repository: repository}
}

// Get returns the chat's profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, chatID int64) (*entities.Profile, error) {
	p, err := s.repository.Get(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Register returns the existing profile or creates a blank one.
// created reports whether the profile is new.
func (s *ProfileService) Register(ctx context.Context, chatID int64, firstName, lastName string) (*entities.Profile, bool, error) {
	p, err := s.Get(ctx, chatID)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, false, err
	}

	p = entities.NewProfile(chatID, firstName, lastName)
	if _, err := s.repository.Save(ctx, p); err != nil {
		return nil, false, fmt.Errorf("register profile: %w", err)
	}

	return p, true, nil
}

// SetNativeLanguage stores the native language chosen during onboarding.
// The target language is cleared until it is chosen explicitly.
func (s *ProfileService) SetNativeLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error) {
	if !lang.Valid() {
		return nil, ErrInvalidLanguage
	}
	return s.update(ctx, chatID, func(p *entities.Profile) error {
		p.NativeLanguage = lang
		p.TargetLanguage = ""
		return nil
	})
}

// SetTargetLanguage stores the target language. It must be the complement
// of the native language.
func (s *ProfileService) SetTargetLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error) {
	if !lang.Valid() {
		return nil, ErrInvalidLanguage
	}
	return s.update(ctx, chatID, func(p *entities.Profile) error {
		if p.NativeLanguage.Complement() != lang {
			return ErrInvalidLanguagePair
		}
		p.TargetLanguage = lang
		return nil
	})
}

// ChangeNativeLanguage switches the native language and derives the target.
func (s *ProfileService) ChangeNativeLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error) {
	if !lang.Valid() {
		return nil, ErrInvalidLanguage
	}
	return s.update(ctx, chatID, func(p *entities.Profile) error {
		p.NativeLanguage = lang
		p.TargetLanguage = lang.Complement()
		return nil
	})
}

func (s *ProfileService) SetLevel(ctx context.Context, chatID int64, level entities.Level) (*entities.Profile, error) {
	if !level.Valid() {
		return nil, ErrInvalidLevel
	}
	return s.update(ctx, chatID, func(p *entities.Profile) error {
		p.Level = level
		return nil
	})
}

func (s *ProfileService) SetSentenceRounds(ctx context.Context, chatID int64, rounds int) (*entities.Profile, error) {
	if !entities.ValidSentenceRounds(rounds) {
		return nil, ErrInvalidRoundCount
	}
	return s.update(ctx, chatID, func(p *entities.Profile) error {
		p.SentenceRounds = rounds
		return nil
	})
}

func (s *ProfileService) update(ctx context.Context, chatID int64, fn func(p *entities.Profile) error) (*entities.Profile, error) {
	p, err := s.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	if _, err := s.repository.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return p, nil
}
