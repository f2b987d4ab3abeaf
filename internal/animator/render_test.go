package animator

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gravclock/internal/clock"
	"gravclock/internal/scene"
	"gravclock/internal/surface"
)

// recorder is a Surface whose canvas logs every call.
type recorder struct {
	ops []string
	op  surface.CompositeOp
}

func (r *recorder) ID() string                         { return "rec" }
func (r *recorder) Size() (float64, float64)           { return 800, 600 }
func (r *recorder) DevicePixelRatio() float64          { return 1 }
func (r *recorder) Context2D() (surface.Canvas, error) { return r, nil }

func (r *recorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...)+" "+r.op.String())
}

func (r *recorder) ClearRect(x, y, w, h float64) { r.ops = append(r.ops, "clear") }
func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.log("fill %s", name(c))
}
func (r *recorder) StrokeCircle(cx, cy, rad float64, p surface.Paint) {
	r.log("ring %s w%g", name(p.Color), p.Width)
}
func (r *recorder) StrokeLine(x0, y0, x1, y1 float64, p surface.Paint) {
	r.log("line %s w%g", name(p.Color), p.Width)
}
func (r *recorder) SetCompositeOp(op surface.CompositeOp) { r.op = op }
func (r *recorder) CompositeOp() surface.CompositeOp      { return r.op }

func name(c color.Color) string {
	for _, n := range []string{"blue", "white", "purple", "black"} {
		if scene.Color(n) == c {
			return n
		}
	}
	return fmt.Sprint(c)
}

func TestRender_DrawOrder(t *testing.T) {
	rec := &recorder{}
	reg := surface.NewRegistry()
	reg.Register(rec)
	a, err := New("rec", reg, scene.New(), WithClock(clock.NewMockClock(at(6, 30, 0, 0))))
	if err != nil {
		t.Fatal(err)
	}

	a.Render()
	a.Render()

	frame1 := []string{
		"clear",
		"fill blue source-over",
		"ring black w2 source-over",
		"line blue w30 source-over",
		"fill purple source-over",
		"line blue w30 multiply",
		"fill purple multiply",
		"line white w30 multiply",
	}
	frame2 := []string{
		"clear",
		"fill blue multiply",
		"ring black w2 multiply",
		"line blue w30 multiply",
		"fill purple multiply",
		"line blue w30 multiply",
		"fill purple multiply",
		"line white w30 multiply",
	}
	want := append(frame1, frame2...)
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("draw order mismatch (-want +got):\n%s", diff)
	}
}
