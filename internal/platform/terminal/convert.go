package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/glint/internal/input/code"
)

// keyCode maps a tcell key event to a code. tcell folds ctrl into the key
// constant for letters, so KeyCtrlA arrives as the letter A; the caller
// must treat those as ctrl-held.
func keyCode(ev *tcell.EventKey) code.Code {
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return runeCode(ev.Rune())
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return code.A + code.Code(k-tcell.KeyCtrlA)
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return code.F1 + code.Code(k-tcell.KeyF1)
	}

	switch k {
	case tcell.KeyEscape:
		return code.Escape
	case tcell.KeyEnter:
		return code.Enter
	case tcell.KeyTab:
		return code.Tab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return code.Backspace
	case tcell.KeyDelete:
		return code.Delete
	case tcell.KeyInsert:
		return code.Insert
	case tcell.KeyHome:
		return code.Home
	case tcell.KeyEnd:
		return code.End
	case tcell.KeyPgUp:
		return code.PageUp
	case tcell.KeyPgDn:
		return code.PageDown
	case tcell.KeyUp:
		return code.Up
	case tcell.KeyDown:
		return code.Down
	case tcell.KeyLeft:
		return code.Left
	case tcell.KeyRight:
		return code.Right
	default:
		return code.None
	}
}

// runeCode maps printable runes onto letter, digit, and space codes. Other
// runes have no code; text input is a separate channel from actions.
func runeCode(r rune) code.Code {
	switch {
	case r >= 'a' && r <= 'z':
		return code.A + code.Code(r-'a')
	case r >= 'A' && r <= 'Z':
		return code.A + code.Code(r-'A')
	case r >= '0' && r <= '9':
		return code.Num0 + code.Code(r-'0')
	case r == ' ':
		return code.Space
	default:
		return code.None
	}
}

// isCtrlKey reports whether tcell folded a ctrl modifier into the key.
func isCtrlKey(k tcell.Key) bool {
	return k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ
}

// modCodes expands a tcell modifier mask into modifier key codes.
func modCodes(m tcell.ModMask) []code.Code {
	var mods []code.Code
	if m&tcell.ModShift != 0 {
		mods = append(mods, code.Shift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = append(mods, code.Ctrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = append(mods, code.Alt)
	}
	if m&tcell.ModMeta != 0 {
		mods = append(mods, code.Meta)
	}
	return mods
}

// pointerButtons maps tcell button bits to pointer codes, wheels excluded.
var pointerButtons = []struct {
	mask tcell.ButtonMask
	code code.Code
}{
	{tcell.Button1, code.MouseLeft},
	{tcell.Button2, code.MouseRight},
	{tcell.Button3, code.MouseMiddle},
	{tcell.Button4, code.MouseBack},
	{tcell.Button5, code.MouseForward},
}

// wheelCodes maps tcell wheel bits to wheel codes.
var wheelCodes = []struct {
	mask tcell.ButtonMask
	code code.Code
}{
	{tcell.WheelUp, code.WheelUp},
	{tcell.WheelDown, code.WheelDown},
	{tcell.WheelLeft, code.WheelLeft},
	{tcell.WheelRight, code.WheelRight},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
