// Package clock abstracts wall-clock time so the animator can be driven
// by a pinned time in tests and by the system clock at runtime.
package clock

import (
	"time"
)

// Clock is the time source used for hand angles and frame pacing.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers frame ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{time.NewTicker(d)}
}

type realTicker struct{ *time.Ticker }

func (t *realTicker) C() <-chan time.Time { return t.Ticker.C }
func (t *realTicker) Stop()               { t.Ticker.Stop() }

// At returns a clock whose Now always reports t. Tickers and timers
// still run on real time, so a headless loop can render a fixed
// moment over many frames.
func At(t time.Time) Clock {
	return fixedClock{at: t}
}

type fixedClock struct {
	RealClock
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }
