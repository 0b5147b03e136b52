package entities

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardSession is an in-progress translation drill.
// Items is a frozen snapshot and must not be modified after creation.
type FlashcardSession struct {
	ID          uuid.UUID
	ChatID      int64
	Items       []VocabularyItem
	Cursor      int
	Correct     int
	Unfamiliar  int
	Favorited   int
	OnlyUnknown bool  // restricted to the user's unknown words
	Tier        Level // tier used to build Items
	StartedAt   time.Time
}

func NewFlashcardSession(chatID int64, items []VocabularyItem, tier Level, onlyUnknown bool, now time.Time) *FlashcardSession {
	return &FlashcardSession{
		ID:          uuid.New(),
		ChatID:      chatID,
		Items:       items,
		OnlyUnknown: onlyUnknown,
		Tier:        tier,
		StartedAt:   now,
	}
}

// Current returns the item under the cursor.
func (s *FlashcardSession) Current() (VocabularyItem, bool) {
	if s.Finished() {
		return VocabularyItem{}, false
	}
	return s.Items[s.Cursor], true
}

func (s *FlashcardSession) Advance() {
	if !s.Finished() {
		s.Cursor++
	}
}

func (s *FlashcardSession) Finished() bool {
	return s.Cursor >= len(s.Items)
}

func (s *FlashcardSession) Total() int {
	return len(s.Items)
}

// Clone returns a copy that shares the read-only Items slice.
func (s *FlashcardSession) Clone() *FlashcardSession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// FlashcardResult is the final score of a flashcard session.
type FlashcardResult struct {
	Correct    int
	Unfamiliar int
	Favorited  int
	Total      int
	Percent    float64
	Elapsed    time.Duration
	Tier       Level
}

// Result computes the score at time now.
func (s *FlashcardSession) Result(now time.Time) FlashcardResult {
	r := FlashcardResult{
		Correct:    s.Correct,
		Unfamiliar: s.Unfamiliar,
		Favorited:  s.Favorited,
		Total:      s.Total(),
		Elapsed:    now.Sub(s.StartedAt),
		Tier:       s.Tier,
	}
	if r.Total > 0 {
		r.Percent = float64(r.Correct) / float64(r.Total) * 100
	}
	return r
}
