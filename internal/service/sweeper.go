package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AttemptSweeper drops attempts that were not touched since the cutoff.
type AttemptSweeper interface {
	SweepIdle(cutoff time.Time) int
}

// SweepService periodically removes abandoned attempts from storage.
type SweepService struct {
	store    AttemptSweeper
	ttl      time.Duration
	schedule string
	now      func() time.Time
	logger   *zap.Logger
}

// NewSweepService creates a new sweep service.
func NewSweepService(store AttemptSweeper, ttl time.Duration, schedule string, logger *zap.Logger) *SweepService {
	return &SweepService{
		store:    store,
		ttl:      ttl,
		schedule: schedule,
		now:      time.Now,
		logger:   logger,
	}
}

// Start runs the sweep on its cron schedule until ctx is cancelled.
func (s *SweepService) Start(ctx context.Context) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		s.Sweep()
	})
	if err != nil {
		s.logger.Error("failed to add cron job",
			zap.String("schedule", s.schedule),
			zap.Error(err),
		)
		return
	}

	c.Start()
	s.logger.Info("attempt sweeper started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("attempt sweeper stopped")
}

// Sweep removes attempts idle for longer than the TTL and returns how many went.
func (s *SweepService) Sweep() int {
	removed := s.store.SweepIdle(s.now().Add(-s.ttl))
	if removed > 0 {
		s.logger.Info("idle attempts removed", zap.Int("count", removed))
	}
	return removed
}
