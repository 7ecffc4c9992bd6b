package svg

import (
	"errors"
	"testing"

	"github.com/danielCantwell/rsvg/internal/typeid"
)

func TestCircleRender(t *testing.T) {
	circle := NewCircle(&typeid.Sequence{}, 0, 1.5, 5.2)
	if got, want := circle.Render(), `<circle cx="0" cy="1.5" r="5.2"></circle>`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}

	circle.MoveTo(-1.5, 4)
	if got, want := circle.Render(), `<circle cx="-1.5" cy="4" r="5.2"></circle>`; got != want {
		t.Fatalf("after move: Render() = %q, want %q", got, want)
	}

	if err := circle.Resize(Single{3}); err != nil {
		t.Fatal(err)
	}
	if got, want := circle.Render(), `<circle cx="-1.5" cy="4" r="3"></circle>`; got != want {
		t.Fatalf("after resize: Render() = %q, want %q", got, want)
	}
}

func TestCircleMoveKeepsRadius(t *testing.T) {
	circle := NewCircle(&typeid.Sequence{}, 5, 10, 20)
	circle.MoveTo(12, -16)

	if !circle.Origin().Equal(Point{12, -16}) {
		t.Errorf("origin = %v", circle.Origin())
	}
	if circle.Radius() != 20 {
		t.Errorf("radius = %v, want 20", circle.Radius())
	}
}

func TestCircleResize(t *testing.T) {
	circle := NewCircle(&typeid.Sequence{}, 5, 10, 20)

	if err := circle.Resize(Single{3.5}); err != nil {
		t.Fatal(err)
	}
	if circle.Radius() != 3.5 {
		t.Fatalf("radius = %v, want 3.5", circle.Radius())
	}

	for _, tt := range []struct {
		spec ResizeSpec
		msg  string
	}{
		{Pair{1, 2}, "cannot resize Circle with dimensions Pair(1, 2)"},
		{IndexedPoint{3, 1, 2}, "cannot resize Circle with dimensions IndexedPoint(3, 1, 2)"},
	} {
		err := circle.Resize(tt.spec)
		var mismatch *ResizeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Resize(%v) error = %v, want *ResizeMismatchError", tt.spec, err)
		}
		if mismatch.Kind != KindCircle {
			t.Errorf("mismatch kind = %v", mismatch.Kind)
		}
		if err.Error() != tt.msg {
			t.Errorf("error = %q, want %q", err, tt.msg)
		}
		if circle.Radius() != 3.5 || !circle.Origin().Equal(Point{5, 10}) {
			t.Errorf("circle changed: origin %v radius %v", circle.Origin(), circle.Radius())
		}
	}
}
