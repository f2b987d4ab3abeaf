package clock

import (
	"testing"
	"time"
)

func TestRealClock_NowAndAfter(t *testing.T) {
	clk := RealClock{}
	before := time.Now()
	now := clk.Now()
	after := clk.After(10 * time.Millisecond)
	select {
	case <-after:
		// ok
	case <-time.After(100 * time.Millisecond):
		t.Error("RealClock.After did not fire within expected time")
	}
	if now.Before(before) || now.After(time.Now()) {
		t.Errorf("RealClock.Now returned unexpected time: %v", now)
	}
}

func TestRealClock_NewTicker(t *testing.T) {
	clk := RealClock{}
	ticker := clk.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
		// ok
	case <-time.After(100 * time.Millisecond):
		t.Error("RealClock.NewTicker.C did not fire within expected time")
	}
}

func TestAt_PinsNow(t *testing.T) {
	pinned := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)
	clk := At(pinned)
	if got := clk.Now(); !got.Equal(pinned) {
		t.Fatalf("Now() = %v, want %v", got, pinned)
	}
	time.Sleep(time.Millisecond)
	if got := clk.Now(); !got.Equal(pinned) {
		t.Fatalf("Now() moved to %v", got)
	}
}

func TestMockClock_AdvanceFiresTicker(t *testing.T) {
	start := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)
	ticker := clk.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	clk.Advance(50 * time.Millisecond)

	got := 0
	for {
		select {
		case <-ticker.C():
			got++
			continue
		default:
		}
		break
	}
	if got != 3 {
		t.Errorf("got %d ticks, want 3", got)
	}
	if want := start.Add(50 * time.Millisecond); !clk.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", clk.Now(), want)
	}
}

func TestMockClock_Set(t *testing.T) {
	clk := NewMockClock(time.Time{})
	at := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)
	clk.Set(at)
	if !clk.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", clk.Now(), at)
	}
}

func TestMockTicker_StopIsIdempotent(t *testing.T) {
	clk := NewMockClock(time.Now())
	ticker := clk.NewTicker(time.Second)
	ticker.Stop()
	ticker.Stop()
	clk.Advance(5 * time.Second)
	if _, ok := <-ticker.C(); ok {
		t.Error("stopped ticker delivered a tick")
	}
}
