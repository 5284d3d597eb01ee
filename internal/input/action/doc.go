// Package action defines semantic action identifiers.
//
// An action is what a stroke means ("edit.copy", "node.press"), decoupled
// from which keys or buttons produce it. IDs are small stable integers
// handed out by an explicit registry at startup, never derived from
// reflection or addresses, so they are safe to compare across packages
// and to serialize into keymap files by name.
package action
