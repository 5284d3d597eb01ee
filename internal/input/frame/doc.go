// Package frame resolves one frame's raw input events into semantic
// actions.
//
// Each frame the platform adapter emits (code, activity) events into the
// dispatcher's log, then the application calls Resolve exactly once. The
// dispatcher picks at most one active layer from the mapping (the first,
// in descending modifier-count order, whose modifiers are all held), so
// "ctrl+c" never fires together with plain "c". Within the active layer
// the first trigger a receiver claims wins.
//
// Keyboard and gamepad triggers confirm on press; pointer-button triggers
// confirm on release, and the button reads as down for one extra frame
// past release so release-fired handlers can still observe it.
//
// When no action claims a frame's input, subscribed fallback listeners
// get the log once, which is how text widgets see literal typing.
//
// Everything here is frame-synchronous and single-threaded: the log never
// escapes Resolve, and it is cleared unconditionally at the end of every
// frame.
package frame
