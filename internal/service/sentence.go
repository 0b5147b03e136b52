package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

// SentenceRound is one sentence to reconstruct, with its tokens shuffled.
type SentenceRound struct {
	SessionID uuid.UUID
	Number    int // 1-based
	Total     int
	Tokens    []string
}

// SentenceOutcome describes a scored answer. Result is set when the game is over.
type SentenceOutcome struct {
	Correct   bool
	Canonical string
	Result    *entities.SentenceResult
}

// SentenceService runs sentence reconstruction games. After each
// non-final answer the next round is presented with a delay through the
// RoundPresenter.
type SentenceService struct {
	profiles  ProfileRepository
	catalog   CatalogRepository
	chats     *storage.ChatStore
	scheduler scheduler.Scheduler
	delay     time.Duration
	presenter RoundPresenter
	now       func() time.Time
}

func NewSentenceService(
	profiles ProfileRepository,
	catalog CatalogRepository,
	chats *storage.ChatStore,
	sched scheduler.Scheduler,
	delay time.Duration,
) *SentenceService {
	return &SentenceService{
		profiles:  profiles,
		catalog:   catalog,
		chats:     chats,
		scheduler: sched,
		delay:     delay,
		now:       time.Now,
	}
}

// SetPresenter sets the presenter (called after the handler is created).
func (s *SentenceService) SetPresenter(p RoundPresenter) {
	s.presenter = p
}

// Start opens a session with the user's configured number of rounds drawn
// from sentences at or below the user's level.
func (s *SentenceService) Start(ctx context.Context, chatID int64) (*SentenceRound, error) {
	var round *SentenceRound

	err := s.chats.Update(chatID, func(c *storage.ChatContext) error {
		if c.HasGame() {
			return ErrSessionActive
		}

		p, err := loadProfile(ctx, s.profiles, chatID)
		if err != nil {
			return err
		}

		pool, err := s.catalog.SentencesAtLevelUpTo(ctx, p.Level, p.TargetLanguage)
		if err != nil {
			return fmt.Errorf("load sentences: %w", err)
		}
		if len(pool) == 0 {
			return ErrEmptyPool
		}

		rounds := p.SentenceRounds
		if !entities.ValidSentenceRounds(rounds) {
			rounds = entities.DefaultSentenceRounds
		}

		sentences := lo.Shuffle(append([]entities.PracticeSentence(nil), pool...))
		if rounds < len(sentences) {
			sentences = sentences[:rounds]
		}

		session := entities.NewSentenceSession(chatID, sentences, s.now())
		c.Sentence = session
		round = roundOf(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return round, nil
}

// Answer scores the user's sentence. Input that arrives while the next
// round is still pending is rejected with ErrRoundPending.
func (s *SentenceService) Answer(_ context.Context, chatID int64, text string) (*SentenceOutcome, error) {
	var out *SentenceOutcome

	err := s.chats.Update(chatID, func(c *storage.ChatContext) error {
		session := c.Sentence
		if session == nil {
			return ErrNoActiveSession
		}
		if session.AwaitingNext {
			return ErrRoundPending
		}

		sentence, ok := session.Current()
		if !ok {
			c.Sentence = nil
			return ErrNoActiveSession
		}

		o := &SentenceOutcome{Canonical: sentence.CorrectSentence}
		if sentence.Matches(text) {
			session.Correct++
			o.Correct = true
		} else {
			session.Incorrect++
		}

		session.Advance()
		if session.Finished() {
			result := session.Result(s.now())
			o.Result = &result
			c.EndGames()
		} else {
			session.AwaitingNext = true
			id := session.ID
			c.SetPending(s.scheduler.AfterFunc(s.delay, func() { s.continueSession(chatID, id) }))
		}

		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// continueSession presents the next round if the session that scheduled it
// is still active and waiting.
func (s *SentenceService) continueSession(chatID int64, sessionID uuid.UUID) {
	var round *SentenceRound

	_ = s.chats.Update(chatID, func(c *storage.ChatContext) error {
		session := c.Sentence
		if session == nil || session.ID != sessionID || !session.AwaitingNext {
			return nil
		}

		c.ClearPending()
		session.AwaitingNext = false
		round = roundOf(session)
		return nil
	})

	if round != nil && s.presenter != nil {
		s.presenter.PresentSentenceRound(chatID, *round)
	}
}

func roundOf(session *entities.SentenceSession) *SentenceRound {
	sentence, ok := session.Current()
	if !ok {
		return nil
	}

	return &SentenceRound{
		SessionID: session.ID,
		Number:    session.Round(),
		Total:     session.Total(),
		Tokens:    lo.Shuffle(sentence.Tokens()),
	}
}
