package entities

import (
	"time"

	"github.com/google/uuid"
)

// SentenceSession is an in-progress sentence reconstruction drill.
// Sentences is a frozen snapshot and must not be modified after creation.
type SentenceSession struct {
	ID        uuid.UUID
	ChatID    int64
	Sentences []PracticeSentence
	Cursor    int
	Correct   int
	Incorrect int
	StartedAt time.Time

	// AwaitingNext is set between a scored answer and the delayed
	// presentation of the next round.
	AwaitingNext bool
}

func NewSentenceSession(chatID int64, sentences []PracticeSentence, now time.Time) *SentenceSession {
	return &SentenceSession{
		ID:        uuid.New(),
		ChatID:    chatID,
		Sentences: sentences,
		StartedAt: now,
	}
}

func (s *SentenceSession) Current() (PracticeSentence, bool) {
	if s.Finished() {
		return PracticeSentence{}, false
	}
	return s.Sentences[s.Cursor], true
}

func (s *SentenceSession) Advance() {
	if !s.Finished() {
		s.Cursor++
	}
}

func (s *SentenceSession) Finished() bool {
	return s.Cursor >= len(s.Sentences)
}

func (s *SentenceSession) Total() int {
	return len(s.Sentences)
}

// Round returns the 1-based number of the current round.
func (s *SentenceSession) Round() int {
	return s.Cursor + 1
}

func (s *SentenceSession) Clone() *SentenceSession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// SentenceResult is the final score of a sentence session.
type SentenceResult struct {
	Correct   int
	Incorrect int
	Total     int
	Elapsed   time.Duration
}

func (s *SentenceSession) Result(now time.Time) SentenceResult {
	return SentenceResult{
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
		Total:     s.Total(),
		Elapsed:   now.Sub(s.StartedAt),
	}
}
