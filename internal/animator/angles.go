package animator

import (
	"math"
	"time"
)

// Gravity is added to every hand's velocity each frame.
const Gravity = 0.1

// ComputeAngles returns the hour, minute and second hand angles for now.
//
// Each clock field is multiplied by timeSpeed on its own before the
// angles are derived, so a speed other than 1 scales the reading rather
// than the passage of time.
func ComputeAngles(now time.Time, timeSpeed float64) [3]float64 {
	hours := float64(now.Hour()) * timeSpeed
	minutes := float64(now.Minute()) * timeSpeed
	seconds := float64(now.Second()) * timeSpeed
	millis := float64(now.Nanosecond()/int(time.Millisecond)) * timeSpeed

	return [3]float64{
		math.Mod(hours, 12)*math.Pi*2/12 + minutes*math.Pi/6/60,
		minutes*math.Pi*2/60 + seconds*math.Pi/30/60,
		(seconds*1000 + millis) * math.Pi * 2 / 60000,
	}
}

// ApplyPerturbation accelerates every hand by Gravity and advances its
// angle by the new velocity. Render overwrites the angles from the
// clock right after, so only the velocity carries over between frames.
func (a *Animator) ApplyPerturbation() {
	for i := range a.state.Hands {
		h := &a.state.Hands[i]
		h.Velocity += Gravity
		h.Angle += h.Velocity
	}
}
