package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

type presenterFake struct {
	mu     sync.Mutex
	rounds []SentenceRound
}

func (p *presenterFake) PresentSentenceRound(_ int64, round SentenceRound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rounds = append(p.rounds, round)
}

type sentenceFixture struct {
	svc       *SentenceService
	chats     *storage.ChatStore
	sched     *scheduler.Manual
	presenter *presenterFake
	profiles  *profileRepoFake
}

func newSentenceFixture(level entities.Level, rounds int, sentences []entities.PracticeSentence) *sentenceFixture {
	p := completeProfile(1, level)
	p.SentenceRounds = rounds
	profiles := newProfileRepoFake(p)
	chats := storage.NewChatStore()
	sched := scheduler.NewManual()
	presenter := &presenterFake{}

	svc := NewSentenceService(profiles, &catalogRepoFake{sentences: sentences}, chats, sched, 2*time.Second)
	svc.SetPresenter(presenter)

	return &sentenceFixture{svc: svc, chats: chats, sched: sched, presenter: presenter, profiles: profiles}
}

func sentencesOf(level entities.Level, texts ...string) []entities.PracticeSentence {
	out := make([]entities.PracticeSentence, len(texts))
	for i, text := range texts {
		out[i] = entities.PracticeSentence{
			ID:              int64(i + 1),
			Words:           "a, b, c",
			CorrectSentence: text,
			Level:           level,
			Language:        entities.LanguageChinese,
		}
	}
	return out
}

func TestSentenceStartEmptyPool(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelB2, "x"))

	_, err := f.svc.Start(context.Background(), 1)
	require.ErrorIs(t, err, ErrEmptyPool)
	assert.False(t, f.chats.View(1).HasGame())
}

func TestSentenceStartTruncatesToRounds(t *testing.T) {
	texts := make([]string, 12)
	for i := range texts {
		texts[i] = "s"
	}
	f := newSentenceFixture(entities.LevelB1, 10, sentencesOf(entities.LevelA2, texts...))

	round, err := f.svc.Start(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, round.Number)
	assert.Equal(t, 10, round.Total)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, round.Tokens)
}

func TestSentenceStartRejectsWhileFlashcardActive(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelA1, "x"))
	_ = f.chats.Update(1, func(c *storage.ChatContext) error {
		c.Flashcard = entities.NewFlashcardSession(1, zhWords(1, entities.LevelA1), entities.LevelA1, false, time.Now())
		return nil
	})

	_, err := f.svc.Start(context.Background(), 1)
	require.ErrorIs(t, err, ErrSessionActive)
	assert.Nil(t, f.chats.View(1).Sentence)
}

func TestSentenceTwoRoundsOneCorrectOneWrong(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelA1, "I eat an apple.", "I eat an apple."))
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)

	out, err := f.svc.Answer(ctx, 1, "i eat an apple.")
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Nil(t, out.Result)

	assert.Equal(t, []time.Duration{2 * time.Second}, f.sched.Delays())
	require.Equal(t, 1, f.sched.Fire())
	require.Len(t, f.presenter.rounds, 1)
	assert.Equal(t, 2, f.presenter.rounds[0].Number)

	out, err = f.svc.Answer(ctx, 1, "I eat apple.")
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, "I eat an apple.", out.Canonical)
	require.NotNil(t, out.Result)
	assert.Equal(t, 1, out.Result.Correct)
	assert.Equal(t, 1, out.Result.Incorrect)

	assert.Nil(t, f.chats.View(1).Sentence)
	assert.Zero(t, f.sched.Pending())
}

func TestSentenceInputWhileRoundPending(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelA1, "one", "two"))
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, "one")
	require.NoError(t, err)

	_, err = f.svc.Answer(ctx, 1, "two")
	require.ErrorIs(t, err, ErrRoundPending)

	view := f.chats.View(1).Sentence
	assert.Equal(t, 1, view.Correct)
	assert.Zero(t, view.Incorrect)
}

func TestSentenceEndingSessionCancelsContinuation(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelA1, "one", "two"))
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, "one")
	require.NoError(t, err)
	require.Equal(t, 1, f.sched.Pending())

	f.chats.EndGames(1)

	assert.Zero(t, f.sched.Pending())
	assert.Zero(t, f.sched.Fire())
	assert.Empty(t, f.presenter.rounds)
}

func TestSentenceStaleContinuationIsIgnored(t *testing.T) {
	f := newSentenceFixture(entities.LevelA1, 5, sentencesOf(entities.LevelA1, "one", "two"))
	ctx := context.Background()

	first, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, "one")
	require.NoError(t, err)

	// The continuation of the first session fires after a new session started.
	_ = f.chats.Update(1, func(c *storage.ChatContext) error {
		c.Sentence = entities.NewSentenceSession(1, sentencesOf(entities.LevelA1, "x"), time.Now())
		c.ClearPending()
		return nil
	})
	f.svc.continueSession(1, first.SessionID)

	assert.Empty(t, f.presenter.rounds)
	assert.False(t, f.chats.View(1).Sentence.AwaitingNext)
}

func TestSentenceRoundsFallBackToDefault(t *testing.T) {
	texts := make([]string, 8)
	for i := range texts {
		texts[i] = "s"
	}
	f := newSentenceFixture(entities.LevelA1, 0, sentencesOf(entities.LevelA1, texts...))

	round, err := f.svc.Start(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSentenceRounds, round.Total)
}
