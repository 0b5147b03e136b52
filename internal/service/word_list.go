package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
)

// WordListService manages the unknown and favorite word lists.
type WordListService struct {
	lists map[entities.WordListSection]WordListRepository
}

func NewWordListService(unknown, favorites WordListRepository) *WordListService {
	return &WordListService{
		lists: map[entities.WordListSection]WordListRepository{
			entities.SectionUnknown:   unknown,
			entities.SectionFavorites: favorites,
		},
	}
}

func (s *WordListService) list(section entities.WordListSection) (WordListRepository, error) {
	repo, ok := s.lists[section]
	if !ok {
		return nil, ErrInvalidSection
	}
	return repo, nil
}

// Add records the word in the section. Adding an existing word is a no-op
// and reports false.
func (s *WordListService) Add(ctx context.Context, section entities.WordListSection, chatID, wordID int64) (bool, error) {
	repo, err := s.list(section)
	if err != nil {
		return false, err
	}

	created, err := repo.Add(ctx, chatID, wordID)
	if err != nil {
		if errors.Is(err, repository.ErrWordNotFound) {
			return false, ErrWordNotFound
		}
		return false, fmt.Errorf("add to %s: %w", section, err)
	}
	return created, nil
}

func (s *WordListService) Remove(ctx context.Context, section entities.WordListSection, chatID, wordID int64) (bool, error) {
	repo, err := s.list(section)
	if err != nil {
		return false, err
	}

	removed, err := repo.Remove(ctx, chatID, wordID)
	if err != nil {
		return false, fmt.Errorf("remove from %s: %w", section, err)
	}
	return removed, nil
}

func (s *WordListService) Clear(ctx context.Context, section entities.WordListSection, chatID int64) (int64, error) {
	repo, err := s.list(section)
	if err != nil {
		return 0, err
	}

	n, err := repo.Clear(ctx, chatID)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", section, err)
	}
	return n, nil
}

func (s *WordListService) List(ctx context.Context, section entities.WordListSection, chatID int64) ([]entities.WordListEntry, error) {
	repo, err := s.list(section)
	if err != nil {
		return nil, err
	}

	entries, err := repo.List(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", section, err)
	}
	return entries, nil
}

// Contains reports whether the word is in the section.
func (s *WordListService) Contains(ctx context.Context, section entities.WordListSection, chatID, wordID int64) (bool, error) {
	repo, err := s.list(section)
	if err != nil {
		return false, err
	}

	if _, err := repo.Find(ctx, chatID, wordID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find in %s: %w", section, err)
	}
	return true, nil
}
