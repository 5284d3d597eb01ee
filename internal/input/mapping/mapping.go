package mapping

import (
	"fmt"
	"sort"

	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
)

// Mapping is the application keymap: an ordered collection of layers,
// kept sorted by descending modifier count. It is configuration state,
// mutated while building the keymap and read every frame by the
// dispatcher.
//
// Mapping is not safe for concurrent use; the frame model is
// single-threaded and configuration happens between frames.
type Mapping struct {
	layers []*Layer
}

// New creates an empty mapping.
func New() *Mapping {
	return &Mapping{}
}

// Bind associates a stroke with an action. The last code is the terminal
// trigger; any preceding codes are the required modifiers. Binding with no
// codes is a contract violation and returns ErrEmptyStroke.
func (m *Mapping) Bind(act action.ID, codes ...code.Code) error {
	if len(codes) == 0 {
		return ErrEmptyStroke
	}
	if act == action.None {
		return ErrNoAction
	}

	terminal := codes[len(codes)-1]
	layer := m.layerFor(codes[:len(codes)-1])
	layer.Bind(act, terminal)
	return nil
}

// MustBind is Bind for static keymap declarations; it panics on error.
func (m *Mapping) MustBind(act action.ID, codes ...code.Code) {
	if err := m.Bind(act, codes...); err != nil {
		panic(fmt.Sprintf("mapping: binding %v: %v", act, err))
	}
}

// BindStroke binds a stroke given in string notation, e.g. "ctrl+shift+w".
func (m *Mapping) BindStroke(act action.ID, stroke string) error {
	codes, err := code.ParseStroke(stroke)
	if err != nil {
		return err
	}
	return m.Bind(act, codes...)
}

// layerFor finds the layer whose modifier set exactly equals modifiers,
// creating and inserting it if absent. Insertion preserves the descending
// modifier-count order; among layers of equal count, creation order holds.
func (m *Mapping) layerFor(modifiers []code.Code) *Layer {
	probe := newLayer(modifiers)
	for _, l := range m.layers {
		if l.HasModifiers(probe.Modifiers) {
			return l
		}
	}

	// First position where the existing layer has strictly fewer
	// modifiers; sort.Search keeps equal-count layers in creation order.
	pos := sort.Search(len(m.layers), func(i int) bool {
		return len(m.layers[i].Modifiers) < len(probe.Modifiers)
	})

	m.layers = append(m.layers, nil)
	copy(m.layers[pos+1:], m.layers[pos:])
	m.layers[pos] = probe
	return probe
}

// Layers returns the layers in dispatch order (most modifiers first).
// The returned slice is the mapping's own; callers must not mutate it.
func (m *Mapping) Layers() []*Layer {
	return m.layers
}

// LayerCount returns the number of layers.
func (m *Mapping) LayerCount() int {
	return len(m.layers)
}

// BindingCount returns the total number of triggers across all layers.
func (m *Mapping) BindingCount() int {
	n := 0
	for _, l := range m.layers {
		n += len(l.Bindings)
	}
	return n
}

// Validate checks the structural invariants: layers strictly ordered by
// descending modifier count (ties allowed) and no duplicate modifier sets.
func (m *Mapping) Validate() error {
	for i := 1; i < len(m.layers); i++ {
		if len(m.layers[i].Modifiers) > len(m.layers[i-1].Modifiers) {
			return fmt.Errorf("mapping: layer %d out of order", i)
		}
	}
	for i := 0; i < len(m.layers); i++ {
		for j := i + 1; j < len(m.layers); j++ {
			if m.layers[i].HasModifiers(m.layers[j].Modifiers) {
				return fmt.Errorf("mapping: duplicate layers %d and %d", i, j)
			}
		}
	}
	return nil
}
