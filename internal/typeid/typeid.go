package typeid

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.jetify.com/typeid/v2"
)

const (
	PrefixGrid   = "grid"
	PrefixGroup  = "group"
	PrefixRect   = "rect"
	PrefixCircle = "circle"
	PrefixPath   = "path"
)

// Scheme names accepted by FromScheme.
const (
	SchemeTypeID   = "typeid"
	SchemeUUID     = "uuid"
	SchemeSequence = "sequence"
)

// Generator hands out identities for scene elements. Every id returned by a
// Generator is unique for the lifetime of that Generator.
type Generator interface {
	New(prefix string) string
}

// TypeID generates sortable, prefixed ids such as "rect_01h455vb4pex5vsknk084sn02q".
type TypeID struct{}

func (TypeID) New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

// UUID generates random v4 uuids joined to the prefix with an underscore.
type UUID struct{}

func (UUID) New(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// Sequence generates deterministic ids ("rect_1", "rect_2", ...) with one
// counter per prefix. The zero value is ready to use. Not safe for
// concurrent use.
type Sequence struct {
	next map[string]int
}

func (s *Sequence) New(prefix string) string {
	if s.next == nil {
		s.next = make(map[string]int)
	}
	s.next[prefix]++
	return prefix + "_" + strconv.Itoa(s.next[prefix])
}

// FromScheme returns the generator registered under name.
func FromScheme(name string) (Generator, error) {
	switch name {
	case SchemeTypeID:
		return TypeID{}, nil
	case SchemeUUID:
		return UUID{}, nil
	case SchemeSequence:
		return &Sequence{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", name)
	}
}

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
