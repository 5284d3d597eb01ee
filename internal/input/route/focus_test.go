package route

import (
	"testing"

	"github.com/dshills/glint/internal/input/action"
)

// ringWalker walks a fixed slice of nodes in order, wrapping at the ends.
// Neighbor treats up/left as prev and down/right as next.
type ringWalker struct {
	nodes []Node
}

func (w ringWalker) index(n Node) int {
	for i, cand := range w.nodes {
		if cand == n {
			return i
		}
	}
	return -1
}

func (w ringWalker) Next(from Node) Node {
	if len(w.nodes) == 0 {
		return nil
	}
	return w.nodes[(w.index(from)+1)%len(w.nodes)]
}

func (w ringWalker) Prev(from Node) Node {
	if len(w.nodes) == 0 {
		return nil
	}
	i := w.index(from)
	if i <= 0 {
		return w.nodes[len(w.nodes)-1]
	}
	return w.nodes[i-1]
}

func (w ringWalker) Neighbor(from Node, dir Direction) Node {
	switch dir {
	case DirUp, DirLeft:
		return w.Prev(from)
	default:
		return w.Next(from)
	}
}

func TestFocusLifecycleActions(t *testing.T) {
	a := &stubNode{name: "a", consume: true}
	b := &stubNode{name: "b", consume: true}
	f := NewFocus(nil)

	f.Focus(a)
	if f.Focused() != a {
		t.Fatal("a should be focused")
	}
	if len(a.actions) != 1 || a.actions[0] != action.FocusGained {
		t.Errorf("a got %v, want focus.gained", a.actions)
	}
	if !a.IsFocused() {
		t.Error("a should be notified of focus gain")
	}

	f.Focus(b)
	if a.actions[len(a.actions)-1] != action.FocusLost {
		t.Errorf("a got %v, want focus.lost last", a.actions)
	}
	if a.IsFocused() {
		t.Error("a should be notified of focus loss")
	}
	if b.actions[0] != action.FocusGained {
		t.Errorf("b got %v, want focus.gained", b.actions)
	}

	f.Focus(nil)
	if f.Focused() != nil {
		t.Error("focus should clear")
	}
	if b.actions[len(b.actions)-1] != action.FocusLost {
		t.Errorf("b got %v, want focus.lost last", b.actions)
	}
}

func TestRefocusSameNodeIsNoop(t *testing.T) {
	a := &stubNode{name: "a", consume: true}
	f := NewFocus(nil)

	f.Focus(a)
	f.Focus(a)
	if len(a.actions) != 1 {
		t.Errorf("a got %v, want a single focus.gained", a.actions)
	}
}

func TestDeliverGoesToFocused(t *testing.T) {
	a := &stubNode{name: "a", consume: true}
	f := NewFocus(nil)
	f.Focus(a)

	if !f.Deliver(action.Submit, true, 1) {
		t.Error("focused node consumed, delivery should be claimed")
	}
	if a.actions[len(a.actions)-1] != action.Submit {
		t.Errorf("a got %v, want node.submit last", a.actions)
	}
}

func TestDeliverUnfocusedFallsThrough(t *testing.T) {
	f := NewFocus(nil)
	if f.Deliver(action.Submit, true, 1) {
		t.Error("delivery with no focus should fall through")
	}
}

// When the focused node declines a navigation action, the router moves
// focus itself.
func TestNavigationFallback(t *testing.T) {
	a := &stubNode{name: "a"} // consume=false: declines everything
	b := &stubNode{name: "b"}
	c := &stubNode{name: "c"}
	f := NewFocus(ringWalker{nodes: []Node{a, b, c}})
	f.Focus(a)

	if !f.Deliver(action.FocusNext, true, 1) {
		t.Fatal("navigation should be claimed")
	}
	if f.Focused() != b {
		t.Errorf("Focused = %v, want b", f.Focused())
	}

	if !f.Deliver(action.FocusPrev, true, 2) {
		t.Fatal("navigation should be claimed")
	}
	if f.Focused() != a {
		t.Errorf("Focused = %v, want a", f.Focused())
	}

	if !f.Deliver(action.FocusDown, true, 3) {
		t.Fatal("spatial navigation should be claimed")
	}
	if f.Focused() != b {
		t.Errorf("Focused = %v, want b", f.Focused())
	}

	if !f.Deliver(action.FocusUp, true, 4) {
		t.Fatal("spatial navigation should be claimed")
	}
	if f.Focused() != a {
		t.Errorf("Focused = %v, want a", f.Focused())
	}
}

// A node that consumes navigation keeps focus where it is.
func TestConsumedNavigationDoesNotMoveFocus(t *testing.T) {
	a := &stubNode{name: "a", consume: true}
	b := &stubNode{name: "b"}
	f := NewFocus(ringWalker{nodes: []Node{a, b}})
	f.Focus(a)

	if !f.Deliver(action.FocusNext, true, 1) {
		t.Fatal("delivery should be claimed by the node")
	}
	if f.Focused() != a {
		t.Error("focus should stay on the consuming node")
	}
}

func TestNavigationFromNothingFocused(t *testing.T) {
	a := &stubNode{name: "a"}
	f := NewFocus(ringWalker{nodes: []Node{a}})

	if !f.Deliver(action.FocusNext, true, 1) {
		t.Fatal("navigation should be claimed")
	}
	if f.Focused() != a {
		t.Errorf("Focused = %v, want a", f.Focused())
	}
}

func TestInactiveDeliveryNeverNavigates(t *testing.T) {
	a := &stubNode{name: "a"}
	b := &stubNode{name: "b"}
	f := NewFocus(ringWalker{nodes: []Node{a, b}})
	f.Focus(a)

	if f.Deliver(action.FocusNext, false, 1) {
		t.Error("inactive delivery should fall through")
	}
	if f.Focused() != a {
		t.Error("focus must not move on an inactive delivery")
	}
}

func TestNonNavigationUnconsumedFallsThrough(t *testing.T) {
	a := &stubNode{name: "a"}
	f := NewFocus(ringWalker{nodes: []Node{a}})
	f.Focus(a)

	if f.Deliver(action.Copy, true, 1) {
		t.Error("unconsumed non-navigation action should fall through")
	}
}
