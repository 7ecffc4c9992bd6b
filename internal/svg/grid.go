package svg

import (
	"strings"

	"github.com/danielCantwell/rsvg/internal/typeid"
)

// DefaultGroup is the group every grid starts with and that AddShape fills.
const DefaultGroup = "shapes"

const defaultSize = 1000

// Grid is the top-level scene. It owns the groups, which own the shapes.
// A Grid is not safe for concurrent use; one caller owns it at a time.
type Grid struct {
	id      string
	ids     typeid.Generator
	width   float64
	height  float64
	system  CoordinateSystem
	viewBox string

	groups     map[string]*Group
	groupOrder []string

	// shapes maps a shape's identity to its index in the default group.
	// Lookups go through the index, so nothing reads this back yet.
	shapes map[string]int
}

// NewGrid creates a 1000x1000 grid. ids supplies identities for the grid
// and for everything created through it.
func NewGrid(ids typeid.Generator, system CoordinateSystem) *Grid {
	return NewGridSize(ids, system, defaultSize, defaultSize)
}

// NewGridSize creates a grid with the given dimensions.
func NewGridSize(ids typeid.Generator, system CoordinateSystem, width, height float64) *Grid {
	g := &Grid{
		id:      ids.New(typeid.PrefixGrid),
		ids:     ids,
		width:   width,
		height:  height,
		system:  system,
		viewBox: system.ViewBox(width, height),
		groups:  make(map[string]*Group),
		shapes:  make(map[string]int),
	}
	g.AddGroup(NewGroup(ids, DefaultGroup))
	return g
}

func (g *Grid) ID() string                         { return g.id }
func (g *Grid) Width() float64                     { return g.width }
func (g *Grid) Height() float64                    { return g.height }
func (g *Grid) CoordinateSystem() CoordinateSystem { return g.system }
func (g *Grid) ViewBox() string                    { return g.viewBox }

// AddGroup stores group under its name, replacing any group of that name,
// and returns the stored group.
func (g *Grid) AddGroup(group *Group) *Group {
	name := group.Name()
	if _, ok := g.groups[name]; !ok {
		g.groupOrder = append(g.groupOrder, name)
	}
	g.groups[name] = group
	return group
}

// Group returns the group with the given name.
func (g *Grid) Group(name string) (*Group, bool) {
	group, ok := g.groups[name]
	return group, ok
}

// AddShape stores s in the default group and returns its index there.
func (g *Grid) AddShape(s Shape) int {
	i := g.groups[DefaultGroup].AddShape(s)
	g.shapes[s.ID()] = i
	return i
}

// Shape returns the shape at index i of the default group.
func (g *Grid) Shape(i int) (Shape, bool) {
	return g.groups[DefaultGroup].Shape(i)
}

// CreateShape adds a zero-sized shape of the named kind at (x, y) and
// returns its index. Paths start as a single point.
func (g *Grid) CreateShape(kind string, x, y float64) (int, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return 0, err
	}

	var s Shape
	switch k {
	case KindRect:
		s = NewRect(g.ids, x, y, 0, 0)
	case KindCircle:
		s = NewCircle(g.ids, x, y, 0)
	case KindPath:
		p, err := NewPathFromPoints(g.ids, []Point{{X: x, Y: y}})
		if err != nil {
			return 0, err
		}
		s = p
	}

	return g.AddShape(s), nil
}

// MoveShape moves the shape at index i.
func (g *Grid) MoveShape(i int, x, y float64) error {
	s, ok := g.Shape(i)
	if !ok {
		return &IndexError{Index: i, What: ErrShapeNotFound}
	}
	s.MoveTo(x, y)
	return nil
}

// ResizeShape resizes the shape at index i.
func (g *Grid) ResizeShape(i int, spec ResizeSpec) error {
	s, ok := g.Shape(i)
	if !ok {
		return &IndexError{Index: i, What: ErrShapeNotFound}
	}
	return s.Resize(spec)
}

// FromScreen converts a point given in the from system into the grid's
// own coordinate system.
func (g *Grid) FromScreen(p Point, from CoordinateSystem) (Point, error) {
	return TransformPoint(p, from, g.system, g.width, g.height)
}

// Render returns the markup of the whole scene. Groups are emitted in the
// order their names were first added; callers should not rely on it.
func (g *Grid) Render() string {
	groups := make([]string, 0, len(g.groupOrder))
	for _, name := range g.groupOrder {
		groups = append(groups, g.groups[name].Render())
	}
	return `<svg viewBox="` + g.viewBox + "\">\n" + strings.Join(groups, "\n") + "\n</svg>"
}
