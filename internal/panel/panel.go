// Package panel binds debug sliders directly to scene fields.
package panel

import (
	"math"

	"gravclock/internal/scene"
)

// Slider edits one float field in place, clamped to [Min, Max].
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
	value *float64
}

// NewSlider binds a slider to v.
func NewSlider(label string, lo, hi, step float64, v *float64) *Slider {
	return &Slider{Label: label, Min: lo, Max: hi, Step: step, value: v}
}

// Value returns the bound field's current value.
func (s *Slider) Value() float64 { return *s.value }

// Set writes v, clamped to the slider range, into the bound field.
func (s *Slider) Set(v float64) {
	*s.value = math.Min(math.Max(v, s.Min), s.Max)
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) {
	s.Set(s.Value() + float64(n)*s.Step)
}

// Fraction returns the value's position in the range, from 0 to 1.
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value() - s.Min) / (s.Max - s.Min)
}

// Labels shown for each hand, then for the time speed.
var (
	HandLabels     = [scene.HandCount]string{"Heures", "Minutes", "Secondes"}
	TimeSpeedLabel = "Vitesse du temps"
)

// Panel is an ordered set of sliders with a selection cursor.
type Panel struct {
	Sliders []*Slider
	cursor  int
}

// Bind builds the debug panel for s: one length slider per hand and
// one time-speed slider.
func Bind(s *scene.State) *Panel {
	p := &Panel{}
	for i := range s.Hands {
		p.Sliders = append(p.Sliders, NewSlider(HandLabels[i], scene.MinLength, scene.MaxLength, 5, &s.Hand(i).Length))
	}
	p.Sliders = append(p.Sliders, NewSlider(TimeSpeedLabel, scene.MinTimeSpeed, scene.MaxTimeSpeed, 0.1, &s.Config.TimeSpeed))
	return p
}

// Selected returns the slider under the cursor.
func (p *Panel) Selected() *Slider { return p.Sliders[p.cursor] }

// Cursor returns the selected slider's index.
func (p *Panel) Cursor() int { return p.cursor }

// Next moves the cursor down, wrapping.
func (p *Panel) Next() { p.cursor = (p.cursor + 1) % len(p.Sliders) }

// Prev moves the cursor up, wrapping.
func (p *Panel) Prev() { p.cursor = (p.cursor + len(p.Sliders) - 1) % len(p.Sliders) }
