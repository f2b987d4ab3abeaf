package animator

import (
	"context"
	"errors"
	"testing"
	"time"

	"gravclock/internal/clock"
)

func TestNewTickerScheduler_Interval(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{50, 20 * time.Millisecond},
		{1000, time.Millisecond},
		{0, time.Second / 60},
	}
	for _, tt := range tests {
		if got := NewTickerScheduler(clock.RealClock{}, tt.fps).Interval(); got != tt.want {
			t.Errorf("fps %v: interval = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestTickerScheduler_RunsUntilLoopStops(t *testing.T) {
	var a *Animator
	a, _ = newRaster(t, 64, 64, 1, WithContinue(func() bool { return a.Frames() < 5 }))

	sched := NewTickerScheduler(clock.RealClock{}, 1000)
	if err := a.Start(sched); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sched.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Frames() != 5 {
		t.Errorf("frames = %d, want 5", a.Frames())
	}
}

func TestTickerScheduler_StopsOnContext(t *testing.T) {
	a, _ := newRaster(t, 64, 64, 1)
	sched := NewTickerScheduler(clock.RealClock{}, 1000)
	if err := a.Start(sched); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := sched.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if a.Frames() < 2 {
		t.Errorf("frames = %d, want the loop to have advanced", a.Frames())
	}
}

func TestTickerScheduler_MockClock(t *testing.T) {
	clk := clock.NewMockClock(at(3, 0, 0, 0))
	sched := NewTickerScheduler(clk, 50)

	fired := 0
	var frame func()
	frame = func() {
		fired++
		if fired < 3 {
			sched.RequestFrame(frame)
		}
	}
	sched.RequestFrame(frame)

	done := make(chan error, 1)
	go func() { done <- sched.Run(context.Background()) }()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatal(err)
			}
			if fired != 3 {
				t.Errorf("fired = %d, want 3", fired)
			}
			return
		case <-deadline:
			t.Fatal("scheduler did not finish")
		default:
			clk.Advance(20 * time.Millisecond)
			time.Sleep(time.Millisecond)
		}
	}
}
