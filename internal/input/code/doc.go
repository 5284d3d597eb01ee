// Package code defines event codes, the identifiers for physical input
// primitives across keyboard, pointer, and gamepad devices.
//
// A Code is an opaque, comparable value. Its device class matters to the
// dispatcher: keyboard and gamepad codes trigger bound actions on press
// (key repeat counts as repeated presses), while pointer buttons trigger
// on release so a press can still be cancelled by dragging away.
//
// Codes parse from and format to stable string names, which is how keymap
// files and binding scripts refer to them:
//
//	codes, err := code.ParseStroke("ctrl+shift+w")
//	// codes = [code.Ctrl, code.Shift, code.W]
package code
