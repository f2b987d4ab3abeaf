package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an in-memory RGBA image of
// ceil(width·dpr) × ceil(height·dpr) physical pixels.
type Raster struct {
	id     string
	width  float64
	height float64
	dpr    float64
	img    *image.RGBA
	ctx    *rasterCanvas
}

// NewRaster returns a raster surface of the given logical size.
// A non-positive dpr is treated as 1.
func NewRaster(id string, width, height, dpr float64) *Raster {
	r := &Raster{id: id}
	r.ctx = &rasterCanvas{r: r}
	r.Resize(width, height, dpr)
	return r
}

func (r *Raster) ID() string                    { return r.id }
func (r *Raster) Size() (width, height float64) { return r.width, r.height }
func (r *Raster) DevicePixelRatio() float64     { return r.dpr }
func (r *Raster) Context2D() (Canvas, error)    { return r.ctx, nil }

// Image returns the physical pixels. The returned image is replaced, not
// mutated, by Resize.
func (r *Raster) Image() *image.RGBA { return r.img }

// Resize reallocates the backing store. As with a canvas element whose
// dimensions are assigned, this clears the pixels and resets the
// context's composite operation.
func (r *Raster) Resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	r.width = math.Max(width, 0)
	r.height = math.Max(height, 0)
	r.dpr = dpr
	pw := int(math.Ceil(r.width * dpr))
	ph := int(math.Ceil(r.height * dpr))
	r.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	r.ctx.op = SourceOver
}

type rasterCanvas struct {
	r  *Raster
	op CompositeOp
	z  vector.Rasterizer
}

func (c *rasterCanvas) SetCompositeOp(op CompositeOp) { c.op = op }
func (c *rasterCanvas) CompositeOp() CompositeOp      { return c.op }

func (c *rasterCanvas) ClearRect(x, y, w, h float64) {
	s := c.r.dpr
	rect := image.Rect(
		int(math.Floor(x*s)), int(math.Floor(y*s)),
		int(math.Ceil((x+w)*s)), int(math.Ceil((y+h)*s)),
	).Intersect(c.r.img.Bounds())
	draw.Draw(c.r.img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *rasterCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.fill(col, func(p *pather) {
		p.circle(cx, cy, r, false)
	})
}

func (c *rasterCanvas) StrokeCircle(cx, cy, r float64, paint Paint) {
	hw := paint.Width / 2
	if hw <= 0 {
		return
	}
	c.fill(paint.Color, func(p *pather) {
		p.circle(cx, cy, r+hw, false)
		if inner := r - hw; inner > 0 {
			p.circle(cx, cy, inner, true)
		}
	})
}

func (c *rasterCanvas) StrokeLine(x0, y0, x1, y1 float64, paint Paint) {
	hw := paint.Width / 2
	if hw <= 0 {
		return
	}
	c.fill(paint.Color, func(p *pather) {
		p.line(x0, y0, x1, y1, hw, paint.Cap)
	})
}

// fill rasterises the path built by build into a coverage mask and
// composites col through it with the current operation.
func (c *rasterCanvas) fill(col color.Color, build func(p *pather)) {
	b := c.r.img.Bounds()
	if b.Empty() {
		return
	}
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Src
	build(&pather{z: &c.z, scale: c.r.dpr})

	mask := image.NewAlpha(b)
	c.z.Draw(mask, b, image.Opaque, image.Point{})

	switch c.op {
	case Multiply:
		multiply(c.r.img, mask, col)
	default:
		draw.DrawMask(c.r.img, b, image.NewUniform(col), image.Point{}, mask, b.Min, draw.Over)
	}
}
