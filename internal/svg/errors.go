package svg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShapeKind      = errors.New("invalid shape kind")
	ErrEmptyPathConstruction = errors.New("at least one point required")
	ErrShapeNotFound         = errors.New("shape not found")
	ErrResizeKindMismatch    = errors.New("resize spec does not match shape kind")
	ErrResizeIndexOutOfRange = errors.New("point index out of range")
	ErrUnsupportedTransform  = errors.New("unsupported coordinate transform")
)

// ResizeMismatchError is returned when a shape is resized with a spec
// variant meant for another kind.
type ResizeMismatchError struct {
	Kind Kind
	Spec ResizeSpec
}

func (e *ResizeMismatchError) Error() string {
	return fmt.Sprintf("cannot resize %s with dimensions %s", e.Kind.Title(), e.Spec)
}

func (e *ResizeMismatchError) Is(target error) bool {
	return target == ErrResizeKindMismatch
}

// IndexError reports an index that does not address an existing element.
// What names the sentinel the index was checked against.
type IndexError struct {
	Index int
	What  error
}

func (e *IndexError) Error() string {
	switch e.What {
	case ErrResizeIndexOutOfRange:
		return fmt.Sprintf("cannot resize Path because point does not exist at index %d", e.Index)
	default:
		return fmt.Sprintf("no shape found at index %d", e.Index)
	}
}

func (e *IndexError) Unwrap() error {
	return e.What
}
