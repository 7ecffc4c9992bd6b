package svg

import "fmt"

// CoordinateSystem fixes where the origin of the grid sits and which way
// the y axis points. Positive x always points right.
type CoordinateSystem int

const (
	TopLeftDownRight  CoordinateSystem = iota // origin top-left, y down
	BottomLeftUpRight                         // origin bottom-left, y up
	MidMidUpRight                             // origin at center, y up
	MidMidDownRight                           // origin at center, y down
)

var coordinateSystemNames = map[CoordinateSystem]string{
	TopLeftDownRight:  "top-left-down-right",
	BottomLeftUpRight: "bottom-left-up-right",
	MidMidUpRight:     "mid-mid-up-right",
	MidMidDownRight:   "mid-mid-down-right",
}

func (c CoordinateSystem) String() string {
	if name, ok := coordinateSystemNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CoordinateSystem(%d)", int(c))
}

// ParseCoordinateSystem returns the system with the given name, e.g.
// "mid-mid-up-right".
func ParseCoordinateSystem(name string) (CoordinateSystem, error) {
	for c, n := range coordinateSystemNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown coordinate system %q", name)
}

// ViewBox returns the SVG viewBox value for a grid of the given size.
func (c CoordinateSystem) ViewBox(width, height float64) string {
	w, h := formatNumber(width), formatNumber(height)
	switch c {
	case BottomLeftUpRight:
		return "0 " + h + " " + w + " " + h
	case MidMidUpRight, MidMidDownRight:
		return formatNumber(width/2) + " " + formatNumber(height/2) + " " + w + " " + h
	default:
		return "0 0 " + w + " " + h
	}
}

// TransformMatrix returns the matrix converting points from one system to
// another on a grid of the given size. Only conversions out of
// TopLeftDownRight into the two centered systems are defined; every other
// pair fails with ErrUnsupportedTransform.
func TransformMatrix(from, to CoordinateSystem, width, height float64) (Matrix2D, error) {
	center := Translate(-width/2, -height/2)

	switch {
	case from == TopLeftDownRight && to == MidMidDownRight:
		return center, nil
	case from == TopLeftDownRight && to == MidMidUpRight:
		return Scale(1, -1).Multiply(center), nil
	default:
		return Identity(), fmt.Errorf("%w: %s to %s", ErrUnsupportedTransform, from, to)
	}
}

// TransformPoint converts p between coordinate systems.
func TransformPoint(p Point, from, to CoordinateSystem, width, height float64) (Point, error) {
	m, err := TransformMatrix(from, to, width, height)
	if err != nil {
		return Point{}, err
	}
	return m.Apply(p), nil
}
