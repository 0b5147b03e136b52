package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type evicterFake struct {
	EvictIdleFunc func(before time.Time) int
	calls         []time.Time
}

func (f *evicterFake) EvictIdle(before time.Time) int {
	f.calls = append(f.calls, before)
	return f.EvictIdleFunc(before)
}

func (f *evicterFake) EvictIdleCalls() []time.Time {
	return f.calls
}

func TestJanitorSweepUsesTTL(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	fake := &evicterFake{EvictIdleFunc: func(time.Time) int { return 3 }}

	j := NewJanitor(fake, 6*time.Hour, "@every 15m", zap.NewNop())
	j.now = func() time.Time { return now }

	assert.Equal(t, 3, j.Sweep())
	assert.Equal(t, []time.Time{now.Add(-6 * time.Hour)}, fake.EvictIdleCalls())
}
