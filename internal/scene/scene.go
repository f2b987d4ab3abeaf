// Package scene holds the mutable state shared by the animator and the
// debug panel: the three clock hands and the time-speed setting.
package scene

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Hand indexes, in draw order.
const (
	HourHand = iota
	MinuteHand
	SecondHand

	HandCount
)

// Slider ranges.
const (
	MinLength    = 0
	MaxLength    = 200
	MinTimeSpeed = 0
	MaxTimeSpeed = 10
)

// Hand is one rotating indicator of the clock.
type Hand struct {
	Angle    float64 `json:"angle"`    // radians, unbounded
	Length   float64 `json:"length"`   // logical pixels
	Color    string  `json:"color"`    // CSS color name
	Velocity float64 `json:"velocity"` // radians per frame, grows every frame
}

// RGBA resolves the hand's color name. Unknown names resolve to black.
func (h Hand) RGBA() color.RGBA {
	return Color(h.Color)
}

// Tip returns the end point of the hand drawn from (cx, cy).
func (h Hand) Tip(cx, cy float64) (x, y float64) {
	return tip(cx, cy, h.Angle, h.Length)
}

// Config is the tunable part of the scene.
type Config struct {
	TimeSpeed float64 `json:"time_speed"`
}

// State is the scene owned by the host and shared by reference with the
// animator and the panel. The animator writes angles and velocities;
// the panel writes lengths and the time speed.
type State struct {
	Hands  [HandCount]Hand `json:"hands"`
	Config Config          `json:"config"`
}

// DefaultLengths are the hour, minute and second hand lengths.
var DefaultLengths = [HandCount]float64{100, 150, 200}

var defaultColors = [HandCount]string{"blue", "blue", "white"}

// New returns the scene with default hands and a time speed of 1.
func New() *State {
	s := &State{Config: Config{TimeSpeed: 1}}
	for i := range s.Hands {
		s.Hands[i] = Hand{
			Length: DefaultLengths[i],
			Color:  defaultColors[i],
		}
	}
	return s
}

// Hand returns a pointer to hand i so callers can bind to its fields.
func (s *State) Hand(i int) *Hand {
	return &s.Hands[i]
}

// String implements fmt.Stringer for log output.
func (s *State) String() string {
	return fmt.Sprintf("speed=%.2f hour=%.0f minute=%.0f second=%.0f",
		s.Config.TimeSpeed, s.Hands[HourHand].Length, s.Hands[MinuteHand].Length, s.Hands[SecondHand].Length)
}

// HandName returns a readable name for hand index i.
func HandName(i int) string {
	switch i {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	default:
		return fmt.Sprintf("hand(%d)", i)
	}
}

// Color resolves a CSS color name.
func Color(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Black
}
