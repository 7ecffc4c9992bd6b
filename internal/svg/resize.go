package svg

import "fmt"

// ResizeSpec describes new dimensions for a shape. Each shape kind accepts
// exactly one variant: Single for circles, Pair for rects and IndexedPoint
// for paths.
type ResizeSpec interface {
	fmt.Stringer
	resizeSpec()
}

// Single carries one scalar, a circle's radius.
type Single struct {
	Value float64
}

// Pair carries two scalars, a rect's width and height.
type Pair struct {
	A float64
	B float64
}

// IndexedPoint moves the path point at Index to (X, Y).
type IndexedPoint struct {
	Index int
	X     float64
	Y     float64
}

func (Single) resizeSpec()       {}
func (Pair) resizeSpec()         {}
func (IndexedPoint) resizeSpec() {}

func (s Single) String() string {
	return fmt.Sprintf("Single(%s)", formatNumber(s.Value))
}

func (p Pair) String() string {
	return fmt.Sprintf("Pair(%s, %s)", formatNumber(p.A), formatNumber(p.B))
}

func (p IndexedPoint) String() string {
	return fmt.Sprintf("IndexedPoint(%d, %s, %s)", p.Index, formatNumber(p.X), formatNumber(p.Y))
}
