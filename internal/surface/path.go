package surface

import (
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// pather emits logical-unit geometry into a rasterizer in physical pixels.
type pather struct {
	z     *vector.Rasterizer
	scale float64
}

func (p *pather) moveTo(x, y float64) {
	p.z.MoveTo(float32(x*p.scale), float32(y*p.scale))
}

func (p *pather) lineTo(x, y float64) {
	p.z.LineTo(float32(x*p.scale), float32(y*p.scale))
}

func (p *pather) cubeTo(bx, by, cx, cy, dx, dy float64) {
	s := p.scale
	p.z.CubeTo(float32(bx*s), float32(by*s), float32(cx*s), float32(cy*s), float32(dx*s), float32(dy*s))
}

// quarter appends a quarter arc around (cx, cy) from c+u to c+v, where u
// and v are perpendicular radius vectors of equal length.
func (p *pather) quarter(cx, cy, ux, uy, vx, vy float64) {
	p.cubeTo(
		cx+ux+kappa*vx, cy+uy+kappa*vy,
		cx+vx+kappa*ux, cy+vy+kappa*uy,
		cx+vx, cy+vy,
	)
}

// circle appends a closed circle. Reversed circles cancel coverage of
// forward ones, which is how rings are cut.
func (p *pather) circle(cx, cy, r float64, reverse bool) {
	sign := 1.0
	if reverse {
		sign = -1
	}
	p.moveTo(cx+r, cy)
	p.quarter(cx, cy, r, 0, 0, sign*r)
	p.quarter(cx, cy, 0, sign*r, -r, 0)
	p.quarter(cx, cy, -r, 0, 0, -sign*r)
	p.quarter(cx, cy, 0, -sign*r, r, 0)
	p.z.ClosePath()
}

// line appends the outline of a stroked segment with half-width hw.
func (p *pather) line(x0, y0, x1, y1, hw float64, lc LineCap) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		if lc == RoundCap {
			p.circle(x0, y0, hw, false)
		}
		return
	}
	// d is along the segment, n across it, both scaled to hw.
	dx, dy := (x1-x0)/length*hw, (y1-y0)/length*hw
	nx, ny := -dy, dx

	p.moveTo(x0+nx, y0+ny)
	p.lineTo(x1+nx, y1+ny)
	if lc == RoundCap {
		p.quarter(x1, y1, nx, ny, dx, dy)
		p.quarter(x1, y1, dx, dy, -nx, -ny)
	} else {
		p.lineTo(x1-nx, y1-ny)
	}
	p.lineTo(x0-nx, y0-ny)
	if lc == RoundCap {
		p.quarter(x0, y0, -nx, -ny, -dx, -dy)
		p.quarter(x0, y0, -dx, -dy, nx, ny)
	}
	p.z.ClosePath()
}
