package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEvicter drops per-chat state untouched since a given time.
type IdleEvicter interface {
	EvictIdle(before time.Time) int
}

// Janitor periodically evicts idle chat contexts together with any
// abandoned game sessions.
type Janitor struct {
	chats    IdleEvicter
	ttl      time.Duration
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

func NewJanitor(chats IdleEvicter, ttl time.Duration, schedule string, logger *zap.Logger) *Janitor {
	return &Janitor{
		chats:    chats,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Sweep evicts idle contexts once and returns how many were removed.
func (j *Janitor) Sweep() int {
	n := j.chats.EvictIdle(j.now().Add(-j.ttl))
	if n > 0 {
		j.logger.Info("evicted idle chats", zap.Int("count", n))
	}
	return n
}

// Start runs Sweep on the configured schedule until ctx is done.
func (j *Janitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(j.schedule, func() { j.Sweep() }); err != nil {
		return fmt.Errorf("add janitor job %q: %w", j.schedule, err)
	}

	c.Start()
	j.logger.Info("janitor started", zap.String("schedule", j.schedule), zap.Duration("ttl", j.ttl))

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("janitor stopped")
	return nil
}
