package svg

import "github.com/danielCantwell/rsvg/internal/typeid"

// Circle is a circle centered on its origin.
type Circle struct {
	id     string
	origin Point
	radius float64
}

// NewCircle creates a circle whose identity comes from ids.
func NewCircle(ids typeid.Generator, x, y, radius float64) *Circle {
	return &Circle{
		id:     ids.New(typeid.PrefixCircle),
		origin: Point{X: x, Y: y},
		radius: radius,
	}
}

func (c *Circle) ID() string      { return c.id }
func (c *Circle) Kind() Kind      { return KindCircle }
func (c *Circle) Origin() Point   { return c.origin }
func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) Render() string {
	return element("circle",
		attr{"cx", formatNumber(c.origin.X)},
		attr{"cy", formatNumber(c.origin.Y)},
		attr{"r", formatNumber(c.radius)},
	)
}

func (c *Circle) MoveTo(x, y float64) {
	c.origin = Point{X: x, Y: y}
}

// Resize accepts a Single radius.
func (c *Circle) Resize(spec ResizeSpec) error {
	s, ok := spec.(Single)
	if !ok {
		return &ResizeMismatchError{Kind: KindCircle, Spec: spec}
	}
	c.radius = s.Value
	return nil
}
