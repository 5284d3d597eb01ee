package route

import "github.com/dshills/glint/internal/input/action"

// focusAware is implemented by nodes that want gain/lose notifications
// beyond the FocusGained/FocusLost action deliveries.
type focusAware interface {
	SetFocused(bool)
}

// Focus routes keyboard and gamepad action deliveries to the focused node.
// When the focused node declines a navigation action (or nothing is
// focused), the router moves focus itself using the tree walker. That lets
// a list widget consume arrow keys internally while a plain button lets
// the same keys walk focus to its neighbors.
type Focus struct {
	walker  TreeWalker
	focused Node
}

// NewFocus creates a focus router navigating through walker. A nil walker
// disables the navigation fallback.
func NewFocus(walker TreeWalker) *Focus {
	return &Focus{walker: walker}
}

// Focused returns the node holding focus, or nil.
func (f *Focus) Focused() Node {
	return f.focused
}

// Focus moves focus to n, which may be nil to clear it. The outgoing node
// receives FocusLost and the incoming one FocusGained; both consumed flags
// are ignored, focus moves regardless.
func (f *Focus) Focus(n Node) {
	if n == f.focused {
		return
	}
	if old := f.focused; old != nil {
		old.RunInputAction(action.FocusLost, true)
		if aware, ok := old.(focusAware); ok {
			aware.SetFocused(false)
		}
	}
	f.focused = n
	if n != nil {
		n.RunInputAction(action.FocusGained, true)
		if aware, ok := n.(focusAware); ok {
			aware.SetFocused(true)
		}
	}
}

// Deliver is the key-event callback handed to the dispatcher. The focused
// node gets first refusal; unconsumed navigation actions then move focus.
func (f *Focus) Deliver(act action.ID, active bool, seq uint64) bool {
	if f.focused != nil && f.focused.RunInputAction(act, active) {
		return true
	}
	if active {
		return f.navigate(act)
	}
	return false
}

// navigate moves focus for the navigation actions, consuming the delivery
// when a destination exists.
func (f *Focus) navigate(act action.ID) bool {
	if f.walker == nil {
		return false
	}

	var to Node
	switch act {
	case action.FocusNext:
		to = f.walker.Next(f.focused)
	case action.FocusPrev:
		to = f.walker.Prev(f.focused)
	case action.FocusUp:
		to = f.walker.Neighbor(f.focused, DirUp)
	case action.FocusDown:
		to = f.walker.Neighbor(f.focused, DirDown)
	case action.FocusLeft:
		to = f.walker.Neighbor(f.focused, DirLeft)
	case action.FocusRight:
		to = f.walker.Neighbor(f.focused, DirRight)
	default:
		return false
	}
	if to == nil {
		return false
	}
	f.Focus(to)
	return true
}
