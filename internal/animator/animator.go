// Package animator drives the clock: every frame it perturbs the hands,
// recomputes their angles from the clock, redraws the surface and asks
// the host for the next frame.
package animator

import (
	"errors"
	"fmt"

	"gravclock/internal/clock"
	"gravclock/internal/logging"
	"gravclock/internal/scene"
	"gravclock/internal/surface"
)

// ErrAlreadyRunning is returned by Start on a running animator.
var ErrAlreadyRunning = errors.New("animator already running")

// Phase is the animator lifecycle state. There is no way back to Unstarted.
type Phase int

const (
	Unstarted Phase = iota
	Running
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "unstarted"
}

// Layout is the surface geometry in logical units.
type Layout struct {
	Width, Height float64
	DPR           float64
	CenterX       float64
	CenterY       float64
	Radius        float64
}

// LayoutFor computes the layout of a surface of logical size w×h.
// The clock radius is 80% of half the shorter side.
func LayoutFor(w, h, dpr float64) Layout {
	return Layout{
		Width:   w,
		Height:  h,
		DPR:     dpr,
		CenterX: w / 2,
		CenterY: h / 2,
		Radius:  min(w, h) / 2 * 0.8,
	}
}

// Animator renders a scene onto a surface, one frame per Tick.
type Animator struct {
	surface surface.Surface
	ctx     surface.Canvas
	state   *scene.State
	clock   clock.Clock
	logger  logging.Logger
	proceed func() bool
	layout  Layout
	phase   Phase
	sched   Scheduler
	frames  uint64
}

// Option configures an Animator.
type Option func(*Animator)

// WithClock sets the time source. Defaults to the system clock.
func WithClock(c clock.Clock) Option {
	return func(a *Animator) { a.clock = c }
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(l logging.Logger) Option {
	return func(a *Animator) { a.logger = l }
}

// WithContinue sets the predicate consulted after every frame; the next
// frame is requested only while it returns true. Defaults to always true.
func WithContinue(fn func() bool) Option {
	return func(a *Animator) { a.proceed = fn }
}

// New binds an animator to the surface registered under surfaceID and
// to state. It fails if the surface is missing or has no 2D context.
func New(surfaceID string, reg *surface.Registry, state *scene.State, opts ...Option) (*Animator, error) {
	a := &Animator{
		state:   state,
		clock:   clock.RealClock{},
		logger:  logging.Discard(),
		proceed: func() bool { return true },
	}
	for _, o := range opts {
		o(a)
	}

	s, err := reg.Lookup(surfaceID)
	if err != nil {
		a.logger.Errorf("animator: %v", err)
		return nil, err
	}
	ctx, err := s.Context2D()
	if err != nil {
		a.logger.Errorf("animator: surface %q: %v", surfaceID, err)
		return nil, fmt.Errorf("surface %q: %w", surfaceID, err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("surface %q: %w", surfaceID, surface.ErrNoContext)
	}
	a.surface = s
	a.ctx = ctx
	a.OnResize()

	a.logger.WithField("surface", surfaceID).Debugf("animator bound: %+v", a.layout)
	return a, nil
}

// OnResize recomputes the layout from the surface's current size and
// device pixel ratio. Nothing else changes.
func (a *Animator) OnResize() {
	w, h := a.surface.Size()
	a.layout = LayoutFor(w, h, a.surface.DevicePixelRatio())
	a.logger.Debugf("animator: layout %.0fx%.0f@%g radius %.1f", w, h, a.layout.DPR, a.layout.Radius)
}

// Start runs the first frame and hands the loop to sched.
func (a *Animator) Start(sched Scheduler) error {
	if a.phase == Running {
		return ErrAlreadyRunning
	}
	a.phase = Running
	a.sched = sched
	a.logger.WithField("surface", a.surface.ID()).Infof("animator started: %s", a.state)
	a.Tick()
	return nil
}

// Tick renders one frame and, if allowed, requests the next one.
func (a *Animator) Tick() {
	a.ApplyPerturbation()
	a.Render()
	a.frames++
	if a.sched != nil && a.proceed() {
		a.sched.RequestFrame(a.Tick)
	}
}

func (a *Animator) Layout() Layout      { return a.layout }
func (a *Animator) State() *scene.State { return a.state }
func (a *Animator) Phase() Phase        { return a.phase }

// Frames returns the number of frames rendered.
func (a *Animator) Frames() uint64 { return a.frames }
