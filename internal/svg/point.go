package svg

import "math"

// Point is a position in grid space.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether p and q are the same point within floating point
// tolerance. Coordinates drift after moves, so callers never compare points
// with ==.
func (p Point) Equal(q Point) bool {
	return approxEqual(p.X, q.X) && approxEqual(p.Y, q.Y)
}

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// minPositive is the smallest positive normal float64.
const minPositive = 0x1p-1022

// approxEqual compares a and b by relative error, falling back to an
// absolute bound when either side is zero or both are subnormal.
func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}

	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)

	if a == 0 || b == 0 || absA+absB < minPositive {
		return diff < epsilon*minPositive
	}

	return diff/math.Min(absA+absB, math.MaxFloat64) < epsilon
}
