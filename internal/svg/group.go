package svg

import (
	"strings"

	"github.com/danielCantwell/rsvg/internal/typeid"
)

// Group owns an ordered list of shapes. Shapes are only ever appended, so
// the index returned by AddShape addresses the same shape for the life of
// the group.
type Group struct {
	id     string
	name   string
	shapes []Shape
}

// NewGroup creates an empty group.
func NewGroup(ids typeid.Generator, name string) *Group {
	return &Group{
		id:   ids.New(typeid.PrefixGroup),
		name: name,
	}
}

func (g *Group) ID() string   { return g.id }
func (g *Group) Name() string { return g.name }
func (g *Group) Len() int     { return len(g.shapes) }

// AddShape appends s and returns its index.
func (g *Group) AddShape(s Shape) int {
	g.shapes = append(g.shapes, s)
	return len(g.shapes) - 1
}

// Shape returns the shape at index i.
func (g *Group) Shape(i int) (Shape, bool) {
	if i < 0 || i >= len(g.shapes) {
		return nil, false
	}
	return g.shapes[i], true
}

// ShapeMarkup returns each shape's markup in index order.
func (g *Group) ShapeMarkup() []string {
	out := make([]string, len(g.shapes))
	for i, s := range g.shapes {
		out[i] = s.Render()
	}
	return out
}

func (g *Group) Render() string {
	return `<g name="` + g.name + "\">\n" + strings.Join(g.ShapeMarkup(), "\n") + "\n</g>"
}
