// Package surface provides the drawing surfaces the clock renders onto.
//
// A Surface is identified by a string id and hands out an immediate-mode
// 2D Canvas. Drawing coordinates are logical units; the surface scales
// them by its device pixel ratio so strokes stay crisp on dense outputs
// (and coarse on a terminal, where one physical pixel is half a cell).
//
// Hosts register surfaces in a Registry and consumers look them up by id:
//
//	reg := surface.NewRegistry()
//	reg.Register(surface.NewRaster("canvas-scene", 800, 600, 1))
//
//	s, err := reg.Lookup("canvas-scene")
//	if err != nil {
//		return err
//	}
//	ctx, err := s.Context2D()
package surface

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"sync"
)

var (
	// ErrSurfaceNotFound is returned when no surface is registered under an id.
	ErrSurfaceNotFound = errors.New("surface not found")
	// ErrNoContext is returned when a surface cannot provide a 2D context.
	ErrNoContext = errors.New("2d context unavailable")
)

// Surface is a drawing target.
type Surface interface {
	// ID returns the id the surface is registered under.
	ID() string
	// Size returns the logical width and height.
	Size() (width, height float64)
	// DevicePixelRatio returns physical pixels per logical unit.
	DevicePixelRatio() float64
	// Context2D returns the surface's drawing context. Repeated calls
	// return the same context.
	Context2D() (Canvas, error)
}

// CompositeOp selects how drawn pixels combine with the backdrop.
type CompositeOp int

const (
	// SourceOver paints the source on top of the backdrop.
	SourceOver CompositeOp = iota
	// Multiply multiplies source and backdrop colors, which can only darken.
	Multiply
)

func (op CompositeOp) String() string {
	switch op {
	case SourceOver:
		return "source-over"
	case Multiply:
		return "multiply"
	default:
		return fmt.Sprintf("CompositeOp(%d)", int(op))
	}
}

// LineCap is the shape at the ends of a stroked line.
type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
)

// Paint describes a stroke.
type Paint struct {
	Color color.Color
	Width float64
	Cap   LineCap
}

// Canvas is an immediate-mode 2D drawing context in logical units.
//
// The composite operation is context state: it applies to every fill and
// stroke after it is set, including those of later frames, until it is
// set again or the surface's backing store is reset.
type Canvas interface {
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1 float64, p Paint)
	SetCompositeOp(op CompositeOp)
	CompositeOp() CompositeOp
}

// Registry maps surface ids to surfaces.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register adds s under s.ID(), replacing any surface with the same id.
func (r *Registry) Register(s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[s.ID()] = s
}

// Lookup returns the surface registered under id.
func (r *Registry) Lookup(id string) (Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, id)
	}
	return s, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
