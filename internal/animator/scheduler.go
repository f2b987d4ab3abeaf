package animator

import (
	"context"
	"time"

	"gravclock/internal/clock"
)

// Scheduler is the host's frame-scheduling primitive: it arranges for fn
// to run once, at the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// TickerScheduler is a headless Scheduler that fires pending frames on a
// clock ticker. Frames run on the goroutine calling Run, one at a time.
type TickerScheduler struct {
	clock    clock.Clock
	interval time.Duration
	pending  func()
}

// NewTickerScheduler returns a scheduler refreshing fps times per second.
func NewTickerScheduler(c clock.Clock, fps float64) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{
		clock:    c,
		interval: time.Duration(float64(time.Second) / fps),
	}
}

// RequestFrame queues fn for the next tick, replacing any queued frame.
func (s *TickerScheduler) RequestFrame(fn func()) {
	s.pending = fn
}

// Interval returns the time between refreshes.
func (s *TickerScheduler) Interval() time.Duration { return s.interval }

// Run fires queued frames until ctx is done or a frame queues nothing.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for s.pending != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticker.C():
			if !ok {
				return nil
			}
			fn := s.pending
			s.pending = nil
			fn()
		}
	}
	return nil
}
