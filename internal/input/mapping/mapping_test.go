package mapping

import (
	"errors"
	"testing"

	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
)

func TestBindEmptyStroke(t *testing.T) {
	m := New()
	if err := m.Bind(action.Copy); !errors.Is(err, ErrEmptyStroke) {
		t.Errorf("Bind with no codes: err = %v, want ErrEmptyStroke", err)
	}
}

func TestBindNoAction(t *testing.T) {
	m := New()
	if err := m.Bind(action.None, code.W); !errors.Is(err, ErrNoAction) {
		t.Errorf("Bind with zero action: err = %v, want ErrNoAction", err)
	}
}

func TestLayerCreationAndReuse(t *testing.T) {
	m := New()
	m.MustBind(action.Copy, code.Ctrl, code.C)
	m.MustBind(action.Cut, code.Ctrl, code.X)
	m.MustBind(action.Submit, code.Enter)

	if m.LayerCount() != 2 {
		t.Fatalf("LayerCount = %d, want 2", m.LayerCount())
	}
	ctrl := m.Layers()[0]
	if len(ctrl.Modifiers) != 1 || ctrl.Modifiers[0] != code.Ctrl {
		t.Errorf("first layer modifiers = %v, want [ctrl]", ctrl.Modifiers)
	}
	if len(ctrl.Bindings) != 2 {
		t.Errorf("ctrl layer bindings = %d, want 2", len(ctrl.Bindings))
	}
}

// Layer ordering invariant: descending modifier count after every Bind,
// regardless of declaration order.
func TestLayerOrderingInvariant(t *testing.T) {
	m := New()
	binds := []struct {
		act   action.ID
		codes []code.Code
	}{
		{action.Submit, []code.Code{code.Enter}},
		{action.Redo, []code.Code{code.Ctrl, code.Shift, code.Z}},
		{action.Copy, []code.Code{code.Ctrl, code.C}},
		{action.FocusPrev, []code.Code{code.Shift, code.Tab}},
		{action.Press, []code.Code{code.Space}},
		{action.SelectToEnd, []code.Code{code.Ctrl, code.Alt, code.Shift, code.End}},
	}

	for _, b := range binds {
		m.MustBind(b.act, b.codes...)
		layers := m.Layers()
		for i := 1; i < len(layers); i++ {
			if len(layers[i].Modifiers) > len(layers[i-1].Modifiers) {
				t.Fatalf("after binding %v: layer %d has more modifiers than layer %d",
					b.codes, i, i-1)
			}
		}
	}

	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestModifierOrderIrrelevant(t *testing.T) {
	m := New()
	m.MustBind(action.Copy, code.Ctrl, code.Shift, code.C)
	m.MustBind(action.Cut, code.Shift, code.Ctrl, code.X)

	if m.LayerCount() != 1 {
		t.Errorf("LayerCount = %d, want 1: modifier order must not create a new layer", m.LayerCount())
	}
}

func TestDuplicateModifierCollapsed(t *testing.T) {
	m := New()
	m.MustBind(action.Copy, code.Ctrl, code.Ctrl, code.C)

	l := m.Layers()[0]
	if len(l.Modifiers) != 1 {
		t.Errorf("Modifiers = %v, want [ctrl]", l.Modifiers)
	}
}

func TestBindAppendsNotReplaces(t *testing.T) {
	m := New()
	m.MustBind(action.Copy, code.Ctrl, code.C)
	m.MustBind(action.Cancel, code.Ctrl, code.C)

	l := m.Layers()[0]
	if len(l.Bindings) != 2 {
		t.Fatalf("Bindings = %d, want 2: later bindings append, never replace", len(l.Bindings))
	}
	if l.Bindings[0].Action != action.Copy {
		t.Error("earlier-declared binding must stay first")
	}
}

func TestBindStroke(t *testing.T) {
	m := New()
	if err := m.BindStroke(action.Copy, "ctrl+c"); err != nil {
		t.Fatalf("BindStroke: %v", err)
	}
	if err := m.BindStroke(action.Copy, "ctrl+bogus"); err == nil {
		t.Error("BindStroke with unknown code should fail")
	}

	l := m.Layers()[0]
	if l.Bindings[0].Code != code.C {
		t.Errorf("terminal = %v, want C", l.Bindings[0].Code)
	}
}

func TestLayerSatisfied(t *testing.T) {
	l := newLayer([]code.Code{code.Ctrl, code.Shift})

	held := map[code.Code]bool{code.Ctrl: true, code.Shift: true}
	if !l.Satisfied(func(c code.Code) bool { return held[c] }) {
		t.Error("layer should be satisfied when all modifiers held")
	}

	delete(held, code.Shift)
	if l.Satisfied(func(c code.Code) bool { return held[c] }) {
		t.Error("layer should not be satisfied with a missing modifier")
	}
}

func TestDefaultMapping(t *testing.T) {
	m := Default()

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if m.LayerCount() < 4 {
		t.Errorf("LayerCount = %d, want at least base, shift, ctrl, ctrl+shift", m.LayerCount())
	}

	// The most specific layer must come first.
	first := m.Layers()[0]
	if len(first.Modifiers) != 2 {
		t.Errorf("first layer modifier count = %d, want 2 (ctrl+shift)", len(first.Modifiers))
	}

	// The base layer must exist and come last.
	last := m.Layers()[m.LayerCount()-1]
	if len(last.Modifiers) != 0 {
		t.Errorf("last layer should be the base layer, got modifiers %v", last.Modifiers)
	}

	// Spot checks for the canonical bindings.
	wantBase := map[code.Code]action.ID{
		code.Enter:     action.Submit,
		code.Escape:    action.Cancel,
		code.Tab:       action.FocusNext,
		code.MouseLeft: action.Press,
		code.WheelDown: action.ScrollDown,
		code.PadB:      action.Cancel,
	}
	for c, want := range wantBase {
		found := action.None
		for _, tr := range last.Bindings {
			if tr.Code == c {
				found = tr.Action
				break
			}
		}
		if found != want {
			t.Errorf("base layer %v -> %v, want %v", c, found, want)
		}
	}
}
