package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
)

// DictionaryCursor is the dictionary view a chat looked at last.
type DictionaryCursor struct {
	Tier entities.Level // empty means all tiers
	Page int
}

// WordListCursor is the personal word list view a chat looked at last.
type WordListCursor struct {
	Section entities.WordListSection
	Page    int
}

// ChatContext holds all transient state of one chat.
// At most one of Flashcard and Sentence is non-nil.
type ChatContext struct {
	Step          entities.DialogStep
	Flashcard     *entities.FlashcardSession
	Sentence      *entities.SentenceSession
	FlashcardTier entities.Level // empty means the profile level
	Dictionary    DictionaryCursor
	MyWords       WordListCursor
	TouchedAt     time.Time

	cancelPending scheduler.Cancel
}

// HasGame reports whether a flashcard or sentence session is active.
func (c ChatContext) HasGame() bool {
	return c.Flashcard != nil || c.Sentence != nil
}

// EndGames discards both sessions and cancels a pending delayed round.
func (c *ChatContext) EndGames() {
	c.Flashcard = nil
	c.Sentence = nil
	c.CancelPending()
}

// SetPending remembers the cancel func of a scheduled continuation,
// cancelling the previous one.
func (c *ChatContext) SetPending(cancel scheduler.Cancel) {
	c.CancelPending()
	c.cancelPending = cancel
}

func (c *ChatContext) CancelPending() {
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
}

// ClearPending forgets the scheduled continuation without cancelling it.
// Called by the continuation itself once it runs.
func (c *ChatContext) ClearPending() {
	c.cancelPending = nil
}

func (c *ChatContext) snapshot() ChatContext {
	cp := *c
	cp.Flashcard = c.Flashcard.Clone()
	cp.Sentence = c.Sentence.Clone()
	cp.cancelPending = nil
	return cp
}

type chatEntry struct {
	mu      sync.Mutex
	ctx     ChatContext
	removed bool
}

// ChatStore keeps ChatContext per chat id. Updates for one chat are
// serialized, different chats never block each other.
type ChatStore struct {
	mu    sync.Mutex
	chats map[int64]*chatEntry
	now   func() time.Time
}

// NewChatStore creates an empty ChatStore.
func NewChatStore() *ChatStore {
	return &ChatStore{
		chats: make(map[int64]*chatEntry),
		now:   time.Now,
	}
}

func (s *ChatStore) entry(chatID int64) *chatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.chats[chatID]
	if !ok {
		e = &chatEntry{ctx: ChatContext{Step: entities.StepStart}}
		s.chats[chatID] = e
	}
	return e
}

// Update runs fn with exclusive access to the chat's context.
// fn must not call back into the store.
func (s *ChatStore) Update(chatID int64, fn func(c *ChatContext) error) error {
	for {
		e := s.entry(chatID)
		done, err := s.apply(e, fn)
		if done {
			return err
		}
	}
}

func (s *ChatStore) apply(e *chatEntry, fn func(c *ChatContext) error) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Evicted between lookup and lock, retry with a fresh entry.
	if e.removed {
		return false, nil
	}

	defer func() { e.ctx.TouchedAt = s.now() }()
	return true, fn(&e.ctx)
}

// View returns a copy of the chat's context. Missing chats are reported
// at StepStart.
func (s *ChatStore) View(chatID int64) ChatContext {
	s.mu.Lock()
	e, ok := s.chats[chatID]
	s.mu.Unlock()

	if !ok {
		return ChatContext{Step: entities.StepStart}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.snapshot()
}

// SetStep moves the chat to step.
func (s *ChatStore) SetStep(chatID int64, step entities.DialogStep) {
	_ = s.Update(chatID, func(c *ChatContext) error {
		c.Step = step
		return nil
	})
}

// EndGames discards the chat's game sessions.
func (s *ChatStore) EndGames(chatID int64) {
	_ = s.Update(chatID, func(c *ChatContext) error {
		c.EndGames()
		return nil
	})
}

// EvictIdle removes contexts not touched since before. Contexts that are
// being updated right now are skipped.
func (s *ChatStore) EvictIdle(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, e := range s.chats {
		if !e.mu.TryLock() {
			continue
		}
		if e.ctx.TouchedAt.Before(before) {
			e.ctx.EndGames()
			e.removed = true
			delete(s.chats, chatID)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Len returns the number of tracked chats.
func (s *ChatStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chats)
}
