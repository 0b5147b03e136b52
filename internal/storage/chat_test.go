package storage

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
)

func TestViewMissingChatIsAtStart(t *testing.T) {
	s := NewChatStore()
	c := s.View(42)
	assert.Equal(t, entities.StepStart, c.Step)
	assert.Zero(t, s.Len())
}

func TestUpdateReturnsError(t *testing.T) {
	s := NewChatStore()
	errBoom := errors.New("boom")

	err := s.Update(1, func(c *ChatContext) error {
		c.Step = entities.StepInMenu
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, entities.StepInMenu, s.View(1).Step)
}

func TestViewReturnsCopy(t *testing.T) {
	s := NewChatStore()
	_ = s.Update(1, func(c *ChatContext) error {
		c.Flashcard = entities.NewFlashcardSession(1, []entities.VocabularyItem{{ID: 1}}, entities.LevelA1, false, time.Now())
		return nil
	})

	view := s.View(1)
	view.Flashcard.Correct = 10

	assert.Zero(t, s.View(1).Flashcard.Correct)
}

func TestConcurrentUpdatesAreNotLost(t *testing.T) {
	s := NewChatStore()
	_ = s.Update(1, func(c *ChatContext) error {
		c.Sentence = entities.NewSentenceSession(1, nil, time.Now())
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(1, func(c *ChatContext) error {
				c.Sentence.Correct++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.View(1).Sentence.Correct)
}

func TestEndGamesCancelsPending(t *testing.T) {
	s := NewChatStore()
	m := scheduler.NewManual()

	_ = s.Update(1, func(c *ChatContext) error {
		c.Sentence = entities.NewSentenceSession(1, nil, time.Now())
		c.SetPending(m.AfterFunc(time.Second, func() {}))
		return nil
	})
	require.Equal(t, 1, m.Pending())

	s.EndGames(1)

	assert.Zero(t, m.Pending())
	assert.False(t, s.View(1).HasGame())
}

func TestSetPendingReplacesPrevious(t *testing.T) {
	m := scheduler.NewManual()
	var c ChatContext

	c.SetPending(m.AfterFunc(time.Second, func() {}))
	c.SetPending(m.AfterFunc(time.Second, func() {}))
	assert.Equal(t, 1, m.Pending())

	c.ClearPending()
	c.CancelPending()
	assert.Equal(t, 1, m.Pending())
}

func TestEvictIdle(t *testing.T) {
	s := NewChatStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.SetStep(1, entities.StepInMenu)

	now = now.Add(2 * time.Hour)
	s.SetStep(2, entities.StepInMenu)

	evicted := s.EvictIdle(now.Add(-time.Hour))
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, entities.StepStart, s.View(1).Step)
	assert.Equal(t, entities.StepInMenu, s.View(2).Step)
}

func TestUpdateAfterEvictionCreatesFreshContext(t *testing.T) {
	s := NewChatStore()
	s.SetStep(1, entities.StepInSettings)
	s.EvictIdle(time.Now().Add(time.Hour))

	_ = s.Update(1, func(c *ChatContext) error {
		assert.Equal(t, entities.StepStart, c.Step)
		return nil
	})
	assert.Equal(t, 1, s.Len())
}
