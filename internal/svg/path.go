package svg

import (
	"strings"

	"github.com/danielCantwell/rsvg/internal/typeid"
)

// Path is a polyline made of one or more sub-paths. Points are stored in a
// single slice; starts holds the index at which each sub-path begins and is
// always strictly increasing, beginning with 0.
type Path struct {
	id     string
	points []Point
	starts []int

	// active is the point selected for editing, -1 when none is.
	active int
}

// NewPathFromPoints creates a path whose first sub-path is points.
func NewPathFromPoints(ids typeid.Generator, points []Point) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPathConstruction
	}
	return &Path{
		id:     ids.New(typeid.PrefixPath),
		points: append([]Point(nil), points...),
		starts: []int{0},
		active: -1,
	}, nil
}

func (p *Path) ID() string { return p.id }
func (p *Path) Kind() Kind { return KindPath }

// AddSubpath appends points as a new sub-path and returns p. Appending no
// points leaves the path unchanged.
func (p *Path) AddSubpath(points ...Point) *Path {
	if len(points) == 0 {
		return p
	}
	p.starts = append(p.starts, len(p.points))
	p.points = append(p.points, points...)
	return p
}

// Len returns the number of points across all sub-paths.
func (p *Path) Len() int { return len(p.points) }

// Point returns the point at index i.
func (p *Path) Point(i int) (Point, bool) {
	if i < 0 || i >= len(p.points) {
		return Point{}, false
	}
	return p.points[i], true
}

// Points returns a copy of every point in order.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Starts returns a copy of the sub-path start indices.
func (p *Path) Starts() []int {
	return append([]int(nil), p.starts...)
}

// SelectPoint marks point i as active. It reports false and keeps the
// previous selection if i is out of range.
func (p *Path) SelectPoint(i int) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	p.active = i
	return true
}

// ActivePoint returns the selected point index, if any.
func (p *Path) ActivePoint() (int, bool) {
	return p.active, p.active >= 0
}

func (p *Path) isStart(i int) bool {
	for _, s := range p.starts {
		if s == i {
			return true
		}
		if s > i {
			return false
		}
	}
	return false
}

// Data returns the path's "d" attribute: M at each sub-path start, L elsewhere.
func (p *Path) Data() string {
	segments := make([]string, len(p.points))
	for i, pt := range p.points {
		op := "L"
		if p.isStart(i) {
			op = "M"
		}
		segments[i] = op + " " + formatNumber(pt.X) + " " + formatNumber(pt.Y)
	}
	return strings.Join(segments, " ")
}

func (p *Path) Render() string {
	return element("path", attr{"d", p.Data()})
}

// MoveTo translates the whole path so its first point lands on (x, y),
// keeping every point's offset from the first.
func (p *Path) MoveTo(x, y float64) {
	if len(p.points) == 0 {
		return
	}
	dx := x - p.points[0].X
	dy := y - p.points[0].Y
	for i := range p.points {
		p.points[i].X += dx
		p.points[i].Y += dy
	}
}

// Resize accepts an IndexedPoint and moves that single point.
func (p *Path) Resize(spec ResizeSpec) error {
	ip, ok := spec.(IndexedPoint)
	if !ok {
		return &ResizeMismatchError{Kind: KindPath, Spec: spec}
	}
	if ip.Index < 0 || ip.Index >= len(p.points) {
		return &IndexError{Index: ip.Index, What: ErrResizeIndexOutOfRange}
	}
	p.points[ip.Index] = Point{X: ip.X, Y: ip.Y}
	return nil
}
