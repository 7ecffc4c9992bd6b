package typeid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTypeIDUniqueAndValid(t *testing.T) {
	var gen TypeID
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.New(PrefixRect)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if err := Validate(id, PrefixRect); err != nil {
			t.Fatalf("Validate(%q): %v", id, err)
		}
	}
}

func TestValidateWrongPrefix(t *testing.T) {
	id := TypeID{}.New(PrefixCircle)
	if err := Validate(id, PrefixPath); err == nil {
		t.Fatalf("expected prefix mismatch for %q", id)
	}
	if err := Validate("not an id", PrefixPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestUUID(t *testing.T) {
	id := UUID{}.New(PrefixGroup)
	rest, ok := strings.CutPrefix(id, PrefixGroup+"_")
	if !ok {
		t.Fatalf("id %q missing prefix", id)
	}
	if _, err := uuid.Parse(rest); err != nil {
		t.Fatalf("id %q: %v", id, err)
	}
	if id == (UUID{}).New(PrefixGroup) {
		t.Fatal("expected distinct uuids")
	}
}

func TestSequence(t *testing.T) {
	var seq Sequence
	got := []string{
		seq.New(PrefixRect),
		seq.New(PrefixRect),
		seq.New(PrefixPath),
		seq.New(PrefixRect),
	}
	want := []string{"rect_1", "rect_2", "path_1", "rect_3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFromScheme(t *testing.T) {
	for _, name := range []string{SchemeTypeID, SchemeUUID, SchemeSequence} {
		gen, err := FromScheme(name)
		if err != nil {
			t.Fatalf("FromScheme(%q): %v", name, err)
		}
		if !strings.HasPrefix(gen.New(PrefixGrid), PrefixGrid+"_") {
			t.Errorf("%s: id missing prefix", name)
		}
	}
	if _, err := FromScheme("snowflake"); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}
