// Package terminal adapts tcell terminal input to the frame dispatcher.
//
// It owns the impedance mismatch between terminal reality and the input
// model: terminals report key presses but never releases, fold ctrl into
// letter keys, autorepeat at their own rate, and deliver wheel ticks as
// momentary button bits. The adapter synthesizes releases one frame after
// each press, unfolds modifiers, normalizes autorepeat through a timing
// gate, and expands wheel ticks into same-frame press and release pairs.
package terminal
