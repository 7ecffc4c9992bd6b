package svg

import "github.com/danielCantwell/rsvg/internal/typeid"

// Rect is an axis-aligned rectangle anchored at its origin. Width and height
// are stored as given, including zero and negative values.
type Rect struct {
	id     string
	origin Point
	width  float64
	height float64
}

// NewRect creates a rect whose identity comes from ids.
func NewRect(ids typeid.Generator, x, y, width, height float64) *Rect {
	return &Rect{
		id:     ids.New(typeid.PrefixRect),
		origin: Point{X: x, Y: y},
		width:  width,
		height: height,
	}
}

func (r *Rect) ID() string    { return r.id }
func (r *Rect) Kind() Kind    { return KindRect }
func (r *Rect) Origin() Point { return r.origin }

// Size returns the width and height.
func (r *Rect) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Rect) Render() string {
	return element("rect",
		attr{"x", formatNumber(r.origin.X)},
		attr{"y", formatNumber(r.origin.Y)},
		attr{"width", formatNumber(r.width)},
		attr{"height", formatNumber(r.height)},
	)
}

func (r *Rect) MoveTo(x, y float64) {
	r.origin = Point{X: x, Y: y}
}

// Resize accepts a Pair of width and height.
func (r *Rect) Resize(spec ResizeSpec) error {
	p, ok := spec.(Pair)
	if !ok {
		return &ResizeMismatchError{Kind: KindRect, Spec: spec}
	}
	r.width = p.A
	r.height = p.B
	return nil
}
