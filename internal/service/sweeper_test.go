package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeSweeper struct {
	cutoffs []time.Time
	removed int
}

func (f *fakeSweeper) SweepIdle(cutoff time.Time) int {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.removed
}

func TestSweepUsesTTL(t *testing.T) {
	store := &fakeSweeper{removed: 2}
	svc := NewSweepService(store, 6*time.Hour, "*/15 * * * *", zap.NewNop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if got := svc.Sweep(); got != 2 {
		t.Fatalf("Expected 2 removed, got %d", got)
	}
	if len(store.cutoffs) != 1 || !store.cutoffs[0].Equal(now.Add(-6*time.Hour)) {
		t.Fatalf("Unexpected cutoff %v", store.cutoffs)
	}
}

func TestStartStopsOnContextCancel(t *testing.T) {
	svc := NewSweepService(&fakeSweeper{}, time.Hour, "@every 1h", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("sweeper did not stop after cancel")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	svc := NewSweepService(&fakeSweeper{}, time.Hour, "not a schedule", zap.NewNop())

	done := make(chan struct{})
	go func() {
		svc.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Start should return on invalid schedule")
	}
}
