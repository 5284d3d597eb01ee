package mapping

import (
	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
)

// Default constructs the canonical mapping covering standard navigation,
// editing, and scrolling. Declaration order groups bindings by layer so the
// resulting layer order is ctrl+shift, then the single-modifier layers, then
// the base layer.
func Default() *Mapping {
	m := New()

	// ctrl+shift layer
	m.MustBind(action.Redo, code.Ctrl, code.Shift, code.Z)
	m.MustBind(action.SelectWordLeft, code.Ctrl, code.Shift, code.Left)
	m.MustBind(action.SelectWordRight, code.Ctrl, code.Shift, code.Right)
	m.MustBind(action.SelectToStart, code.Ctrl, code.Shift, code.Home)
	m.MustBind(action.SelectToEnd, code.Ctrl, code.Shift, code.End)
	m.MustBind(action.Submit, code.Ctrl, code.Shift, code.Enter)

	// ctrl layer
	m.MustBind(action.Copy, code.Ctrl, code.C)
	m.MustBind(action.Cut, code.Ctrl, code.X)
	m.MustBind(action.Paste, code.Ctrl, code.V)
	m.MustBind(action.Undo, code.Ctrl, code.Z)
	m.MustBind(action.Redo, code.Ctrl, code.Y)
	m.MustBind(action.SelectAll, code.Ctrl, code.A)
	m.MustBind(action.CaretWordLeft, code.Ctrl, code.Left)
	m.MustBind(action.CaretWordRight, code.Ctrl, code.Right)
	m.MustBind(action.CaretDocStart, code.Ctrl, code.Home)
	m.MustBind(action.CaretDocEnd, code.Ctrl, code.End)
	m.MustBind(action.Submit, code.Ctrl, code.Enter)

	// shift layer
	m.MustBind(action.FocusPrev, code.Shift, code.Tab)
	m.MustBind(action.SelectUp, code.Shift, code.Up)
	m.MustBind(action.SelectDown, code.Shift, code.Down)
	m.MustBind(action.SelectLeft, code.Shift, code.Left)
	m.MustBind(action.SelectRight, code.Shift, code.Right)
	m.MustBind(action.ScrollLeft, code.Shift, code.WheelUp)
	m.MustBind(action.ScrollRight, code.Shift, code.WheelDown)

	// alt layer (spatial focus movement)
	m.MustBind(action.FocusUp, code.Alt, code.Up)
	m.MustBind(action.FocusDown, code.Alt, code.Down)
	m.MustBind(action.FocusLeft, code.Alt, code.Left)
	m.MustBind(action.FocusRight, code.Alt, code.Right)

	// base layer
	m.MustBind(action.Submit, code.Enter)
	m.MustBind(action.Cancel, code.Escape)
	m.MustBind(action.FocusNext, code.Tab)
	m.MustBind(action.Press, code.Space)
	m.MustBind(action.CaretUp, code.Up)
	m.MustBind(action.CaretDown, code.Down)
	m.MustBind(action.CaretLeft, code.Left)
	m.MustBind(action.CaretRight, code.Right)
	m.MustBind(action.CaretLineStart, code.Home)
	m.MustBind(action.CaretLineEnd, code.End)
	m.MustBind(action.ScrollPageUp, code.PageUp)
	m.MustBind(action.ScrollPageDown, code.PageDown)
	m.MustBind(action.DeleteFwd, code.Delete)
	m.MustBind(action.DeleteBwd, code.Backspace)

	// Pointer
	m.MustBind(action.Press, code.MouseLeft)
	m.MustBind(action.AltPress, code.MouseRight)
	m.MustBind(action.ScrollUp, code.WheelUp)
	m.MustBind(action.ScrollDown, code.WheelDown)
	m.MustBind(action.ScrollLeft, code.WheelLeft)
	m.MustBind(action.ScrollRight, code.WheelRight)

	// Gamepad
	m.MustBind(action.Press, code.PadA)
	m.MustBind(action.Cancel, code.PadB)
	m.MustBind(action.FocusUp, code.PadUp)
	m.MustBind(action.FocusDown, code.PadDown)
	m.MustBind(action.FocusLeft, code.PadLeft)
	m.MustBind(action.FocusRight, code.PadRight)

	return m
}
