package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

// FlashcardSizes are the game lengths offered to the user. Zero means all words.
var FlashcardSizes = []int{10, 20, 30, 45, 60, 90}

// passPercent is the score at which a practice test is suggested.
const passPercent = 95.0

// Card is the word presented in one flashcard round.
type Card struct {
	Item     entities.VocabularyItem
	Position int // 1-based
	Total    int
}

// FlashcardInputKind is the kind of response to a card.
type FlashcardInputKind int

const (
	InputAnswer FlashcardInputKind = iota
	InputUnfamiliar
	InputFavorite
)

type FlashcardInput struct {
	Kind FlashcardInputKind
	Text string
}

// Verdict is how a flashcard round was scored.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictWrong
	VerdictUnfamiliar
	VerdictFavorited
)

// FlashcardOutcome describes a scored round. Exactly one of Next and Result is set.
type FlashcardOutcome struct {
	Verdict         Verdict
	Item            entities.VocabularyItem
	Graduated       bool // removed from unknown words after a correct answer
	AlreadyFavorite bool
	Next            *Card
	Result          *FlashcardSummary
}

// FlashcardSummary is the final report of a finished game.
type FlashcardSummary struct {
	entities.FlashcardResult
	SuggestTest bool
	TestURL     string
}

// FlashcardService runs flashcard games.
type FlashcardService struct {
	profiles        ProfileRepository
	catalog         CatalogRepository
	words           *WordListService
	chats           *storage.ChatStore
	practiceTestURL string
	now             func() time.Time
}

func NewFlashcardService(
	profiles ProfileRepository,
	catalog CatalogRepository,
	words *WordListService,
	chats *storage.ChatStore,
	practiceTestURL string,
) *FlashcardService {
	return &FlashcardService{
		profiles:        profiles,
		catalog:         catalog,
		words:           words,
		chats:           chats,
		practiceTestURL: practiceTestURL,
		now:             time.Now,
	}
}

// SelectTier sets the tier used to build flashcard games for the chat.
// An empty tier falls back to the profile level.
func (s *FlashcardService) SelectTier(chatID int64, tier entities.Level) error {
	if tier != "" && !tier.Valid() {
		return ErrInvalidLevel
	}
	return s.chats.Update(chatID, func(c *storage.ChatContext) error {
		c.FlashcardTier = tier
		return nil
	})
}

// Start builds a working set and opens a session. size == 0 uses the whole
// candidate pool. When onlyUnknown is set the pool is the user's unknown words.
func (s *FlashcardService) Start(ctx context.Context, chatID int64, size int, onlyUnknown bool) (*Card, entities.Level, error) {
	var (
		card *Card
		tier entities.Level
	)

	err := s.chats.Update(chatID, func(c *storage.ChatContext) error {
		if c.HasGame() {
			return ErrSessionActive
		}

		p, err := loadProfile(ctx, s.profiles, chatID)
		if err != nil {
			return err
		}

		tier = p.Level
		if c.FlashcardTier != "" {
			tier = c.FlashcardTier
		}

		pool, err := s.candidates(ctx, chatID, p, tier, onlyUnknown)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			return ErrEmptyPool
		}

		items := lo.Shuffle(append([]entities.VocabularyItem(nil), pool...))
		if size > 0 && size < len(items) {
			items = items[:size]
		}

		session := entities.NewFlashcardSession(chatID, items, tier, onlyUnknown, s.now())
		c.Flashcard = session
		card = cardOf(session)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return card, tier, nil
}

func (s *FlashcardService) candidates(
	ctx context.Context, chatID int64, p *entities.Profile, tier entities.Level, onlyUnknown bool,
) ([]entities.VocabularyItem, error) {
	if onlyUnknown {
		entries, err := s.words.List(ctx, entities.SectionUnknown, chatID)
		if err != nil {
			return nil, err
		}
		return lo.Map(entries, func(e entities.WordListEntry, _ int) entities.VocabularyItem { return e.Item }), nil
	}

	items, err := s.catalog.WordsAtLevelUpTo(ctx, tier, p.TargetLanguage)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	return items, nil
}

// Answer scores the current card and advances the session. The session is
// discarded when the last card is answered.
func (s *FlashcardService) Answer(ctx context.Context, chatID int64, in FlashcardInput) (*FlashcardOutcome, error) {
	var out *FlashcardOutcome

	err := s.chats.Update(chatID, func(c *storage.ChatContext) error {
		session := c.Flashcard
		if session == nil {
			return ErrNoActiveSession
		}

		item, ok := session.Current()
		if !ok {
			c.Flashcard = nil
			return ErrNoActiveSession
		}

		o := &FlashcardOutcome{Item: item}
		if err := s.score(ctx, chatID, session, item, in, o); err != nil {
			return err
		}

		session.Advance()
		if session.Finished() {
			o.Result = s.summarize(session)
			c.Flashcard = nil
		} else {
			o.Next = cardOf(session)
		}

		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// score persists the effect of the answer first and updates counters only on success.
func (s *FlashcardService) score(
	ctx context.Context, chatID int64, session *entities.FlashcardSession,
	item entities.VocabularyItem, in FlashcardInput, o *FlashcardOutcome,
) error {
	switch in.Kind {
	case InputUnfamiliar:
		if _, err := s.words.Add(ctx, entities.SectionUnknown, chatID, item.ID); err != nil {
			return err
		}
		session.Unfamiliar++
		o.Verdict = VerdictUnfamiliar

	case InputFavorite:
		created, err := s.words.Add(ctx, entities.SectionFavorites, chatID, item.ID)
		if err != nil {
			return err
		}
		session.Favorited++
		o.Verdict = VerdictFavorited
		o.AlreadyFavorite = !created

	default:
		if item.Accepts(in.Text) {
			if session.OnlyUnknown {
				removed, err := s.words.Remove(ctx, entities.SectionUnknown, chatID, item.ID)
				if err != nil {
					return err
				}
				o.Graduated = removed
			}
			session.Correct++
			o.Verdict = VerdictCorrect
			return nil
		}

		if _, err := s.words.Add(ctx, entities.SectionUnknown, chatID, item.ID); err != nil {
			return err
		}
		session.Unfamiliar++
		o.Verdict = VerdictWrong
	}

	return nil
}

func (s *FlashcardService) summarize(session *entities.FlashcardSession) *FlashcardSummary {
	sum := &FlashcardSummary{FlashcardResult: session.Result(s.now())}
	if sum.Percent >= passPercent {
		sum.SuggestTest = true
		sum.TestURL = fmt.Sprintf(s.practiceTestURL, strings.ToLower(string(sum.Tier)))
	}
	return sum
}

func cardOf(session *entities.FlashcardSession) *Card {
	item, ok := session.Current()
	if !ok {
		return nil
	}
	return &Card{Item: item, Position: session.Cursor + 1, Total: session.Total()}
}

// loadProfile returns the profile of a chat that finished onboarding.
func loadProfile(ctx context.Context, repo ProfileRepository, chatID int64) (*entities.Profile, error) {
	p, err := NewProfileService(repo).Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !p.Complete() {
		return nil, ErrProfileNotFound
	}
	return p, nil
}
