package code

import "strings"

// codeNames maps codes to their canonical names.
var codeNames = map[Code]string{
	None:      "none",
	NoOp:      "noop",
	Escape:    "escape",
	Enter:     "enter",
	Tab:       "tab",
	Backspace: "backspace",
	Delete:    "delete",
	Insert:    "insert",
	Home:      "home",
	End:       "end",
	PageUp:    "pageup",
	PageDown:  "pagedown",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Shift:     "shift",
	Ctrl:      "ctrl",
	Alt:       "alt",
	Meta:      "meta",
	F1:        "f1",
	F2:        "f2",
	F3:        "f3",
	F4:        "f4",
	F5:        "f5",
	F6:        "f6",
	F7:        "f7",
	F8:        "f8",
	F9:        "f9",
	F10:       "f10",
	F11:       "f11",
	F12:       "f12",
	Space:     "space",

	MouseLeft:    "mouseleft",
	MouseMiddle:  "mousemiddle",
	MouseRight:   "mouseright",
	MouseBack:    "mouseback",
	MouseForward: "mouseforward",
	WheelUp:      "wheelup",
	WheelDown:    "wheeldown",
	WheelLeft:    "wheelleft",
	WheelRight:   "wheelright",

	PadA:      "pad-a",
	PadB:      "pad-b",
	PadX:      "pad-x",
	PadY:      "pad-y",
	PadL1:     "pad-l1",
	PadR1:     "pad-r1",
	PadL2:     "pad-l2",
	PadR2:     "pad-r2",
	PadStart:  "pad-start",
	PadSelect: "pad-select",
	PadUp:     "pad-up",
	PadDown:   "pad-down",
	PadLeft:   "pad-left",
	PadRight:  "pad-right",
}

// nameAliases maps alternate spellings to canonical names.
var nameAliases = map[string]string{
	"esc":       "escape",
	"return":    "enter",
	"cr":        "enter",
	"bs":        "backspace",
	"del":       "delete",
	"ins":       "insert",
	"pgup":      "pageup",
	"pgdn":      "pagedown",
	"control":   "ctrl",
	"option":    "alt",
	"opt":       "alt",
	"cmd":       "meta",
	"command":   "meta",
	"win":       "meta",
	"super":     "meta",
	"lmb":       "mouseleft",
	"mmb":       "mousemiddle",
	"rmb":       "mouseright",
	"scrollup":   "wheelup",
	"scrolldn":   "wheeldown",
	"scrolldown": "wheeldown",
}

// codesByName is the reverse of codeNames, built once at init.
var codesByName = func() map[string]Code {
	m := make(map[string]Code, len(codeNames))
	for c, name := range codeNames {
		m[name] = c
	}
	return m
}()

// FromName returns the Code for a name (case-insensitive).
// Single letters and digits resolve to the matching letter or digit key.
// Returns None if the name is not recognized.
func FromName(name string) Code {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None
	}

	if alias, ok := nameAliases[name]; ok {
		name = alias
	}
	if c, ok := codesByName[name]; ok {
		return c
	}

	// Single characters map into the letter and digit ranges.
	if len(name) == 1 {
		ch := name[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return A + Code(ch-'a')
		case ch >= '0' && ch <= '9':
			return Num0 + Code(ch-'0')
		}
	}

	return None
}
