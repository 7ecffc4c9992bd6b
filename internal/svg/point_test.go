package svg

import (
	"math"
	"testing"
)

func TestPointEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"identical", Point{1, 2}, Point{1, 2}, true},
		{"drift after add", Point{-2.5 + 4.2, 0.1 + 0.2}, Point{1.7, 0.3}, true},
		{"different", Point{1, 2}, Point{1, 2.0001}, false},
		{"zero vs tiny", Point{0, 0}, Point{1e-300, 0}, false},
		{"signed zeros", Point{0, math.Copysign(0, -1)}, Point{0, 0}, true},
		{"large", Point{1e300, -1e300}, Point{1e300, -1e300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		5:      "5",
		-3:     "-3",
		1.5:    "1.5",
		-0.5:   "-0.5",
		4.3:    "4.3",
		1000:   "1000",
		0.0001: "0.0001",
	}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestResizeSpecString(t *testing.T) {
	tests := []struct {
		spec ResizeSpec
		want string
	}{
		{Single{3.5}, "Single(3.5)"},
		{Pair{1, 2}, "Pair(1, 2)"},
		{IndexedPoint{3, 1, -2.25}, "IndexedPoint(3, 1, -2.25)"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
