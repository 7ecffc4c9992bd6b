package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names a concrete shape type. The string value is what commands use.
type Kind string

const (
	KindRect   Kind = "rect"
	KindCircle Kind = "circle"
	KindPath   Kind = "path"
)

// ParseKind maps a command name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindRect, KindCircle, KindPath:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidShapeKind, name)
	}
}

// Title returns the capitalized kind name used in messages.
func (k Kind) Title() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindCircle:
		return "Circle"
	case KindPath:
		return "Path"
	default:
		return string(k)
	}
}

// Element is anything that renders to markup: shapes, groups and the grid.
type Element interface {
	ID() string
	Render() string
}

// Shape is a drawable element that can be repositioned and resized.
type Shape interface {
	Element
	Kind() Kind

	// MoveTo repositions the shape. Rects and circles move their origin to
	// (x, y); paths shift every point so the first lands on (x, y).
	MoveTo(x, y float64)

	// Resize applies spec, or returns an error and leaves the shape
	// untouched if spec does not fit the shape.
	Resize(spec ResizeSpec) error
}

type attr struct {
	name  string
	value string
}

// element renders an empty element with attributes in the given order.
func element(tag string, attrs ...attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.name, a.value)
	}
	fmt.Fprintf(&b, "></%s>", tag)
	return b.String()
}

// formatNumber writes f in the shortest form that round-trips, so integral
// values carry no fractional part.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
