package action

import (
	"errors"
	"testing"
)

func TestDeclareStable(t *testing.T) {
	r := NewRegistry()

	first, err := r.Declare("edit.copy")
	if err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	second, err := r.Declare("edit.copy")
	if err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	if first != second {
		t.Errorf("re-declaring the same name: %v != %v", first, second)
	}

	other, err := r.Declare("edit.cut")
	if err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	if other == first {
		t.Error("distinct names must get distinct IDs")
	}
}

func TestDeclareEmptyName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Declare(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Declare(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestLookupAndNameOf(t *testing.T) {
	r := NewRegistry()
	id := r.MustDeclare("scroll.down")

	got, ok := r.Lookup("scroll.down")
	if !ok || got != id {
		t.Errorf("Lookup = %v, %v; want %v, true", got, ok, id)
	}
	if _, ok := r.Lookup("scroll.sideways"); ok {
		t.Error("Lookup of undeclared name should fail")
	}

	name, ok := r.NameOf(id)
	if !ok || name != "scroll.down" {
		t.Errorf("NameOf = %q, %v; want %q, true", name, ok, "scroll.down")
	}
	if _, ok := r.NameOf(None); ok {
		t.Error("NameOf(None) should fail")
	}
	if _, ok := r.NameOf(ID(9999)); ok {
		t.Error("NameOf of out-of-range ID should fail")
	}
}

func TestCanonicalActionsDistinct(t *testing.T) {
	ids := []ID{Press, Submit, Cancel, Copy, Cut, Paste, Undo, Redo, FocusNext, FocusPrev}
	seen := make(map[ID]bool)
	for _, id := range ids {
		if id == None {
			t.Fatal("canonical action has zero ID")
		}
		if seen[id] {
			t.Fatalf("duplicate canonical ID %v", id)
		}
		seen[id] = true
	}
}

func TestIDString(t *testing.T) {
	if Copy.String() != "edit.copy" {
		t.Errorf("Copy.String() = %q, want %q", Copy.String(), "edit.copy")
	}
	if s := ID(60000).String(); s != "action(60000)" {
		t.Errorf("unknown ID String() = %q", s)
	}
}
