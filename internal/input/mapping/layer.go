package mapping

import (
	"sort"

	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
)

// Trigger binds one terminal event code to a semantic action.
type Trigger struct {
	// Action fires when Code matches a frame event.
	Action action.ID

	// Code is the terminal code of the stroke.
	Code code.Code
}

// Layer groups triggers that all require the same set of modifier codes.
// Within a mapping no two layers share a modifier set; the mapping keeps
// layers sorted by descending modifier count so the most specific layer
// is considered first at dispatch time.
type Layer struct {
	// Modifiers must all be held for this layer to become active.
	// Empty for the base layer.
	Modifiers []code.Code

	// Bindings in declaration order. Earlier bindings win ties when
	// several triggers share a terminal code.
	Bindings []Trigger
}

// newLayer copies and canonicalizes the modifier set.
func newLayer(modifiers []code.Code) *Layer {
	mods := make([]code.Code, len(modifiers))
	copy(mods, modifiers)
	sort.Slice(mods, func(i, j int) bool { return mods[i] < mods[j] })
	// Collapse duplicates; "ctrl+ctrl+w" means the same as "ctrl+w".
	mods = dedupe(mods)
	return &Layer{Modifiers: mods}
}

func dedupe(sorted []code.Code) []code.Code {
	out := sorted[:0]
	for i, c := range sorted {
		if i == 0 || c != sorted[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// HasModifiers reports whether the layer's modifier set exactly equals
// the given (already canonicalized) set.
func (l *Layer) HasModifiers(mods []code.Code) bool {
	if len(l.Modifiers) != len(mods) {
		return false
	}
	for i, c := range l.Modifiers {
		if c != mods[i] {
			return false
		}
	}
	return true
}

// Satisfied reports whether every modifier is held according to held.
func (l *Layer) Satisfied(held func(code.Code) bool) bool {
	for _, m := range l.Modifiers {
		if !held(m) {
			return false
		}
	}
	return true
}

// Bind appends a trigger. Existing bindings are never removed or replaced;
// a later binding for the same terminal code only matters if every earlier
// one declines the action.
func (l *Layer) Bind(act action.ID, terminal code.Code) {
	l.Bindings = append(l.Bindings, Trigger{Action: act, Code: terminal})
}
