package scene

import "math"

func tip(cx, cy, angle, length float64) (float64, float64) {
	return cx + math.Cos(angle)*length, cy + math.Sin(angle)*length
}

// Bridge returns the circle spanning the tips of two hands: centred on
// the midpoint of the tips with a radius of half their distance.
func Bridge(cx, cy float64, a, b Hand) (x, y, r float64) {
	ax, ay := a.Tip(cx, cy)
	bx, by := b.Tip(cx, cy)
	return (ax + bx) / 2, (ay + by) / 2, math.Hypot(bx-ax, by-ay) / 2
}
