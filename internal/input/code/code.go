package code

import "fmt"

// Code identifies one physical input primitive: a keyboard key, a pointer
// button, or a gamepad button. Codes are opaque values compared by equality.
//
// The numeric space is partitioned by device class because the class decides
// trigger activation semantics: keyboard and gamepad codes activate on press,
// pointer buttons activate on release.
type Code uint16

// Class partitions codes by the kind of device that produces them.
type Class uint8

const (
	// ClassNone indicates an invalid or sentinel code.
	ClassNone Class = iota

	// ClassKeyboard covers keyboard keys, including modifier keys.
	ClassKeyboard

	// ClassPointer covers pointer (mouse, touch, pen) buttons and wheels.
	ClassPointer

	// ClassGamepad covers gamepad buttons and d-pad directions.
	ClassGamepad
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassKeyboard:
		return "keyboard"
	case ClassPointer:
		return "pointer"
	case ClassGamepad:
		return "gamepad"
	default:
		return "none"
	}
}

// Class space boundaries. Codes below pointerBase are keyboard codes.
const (
	pointerBase Code = 0x1000
	gamepadBase Code = 0x2000
)

const (
	// None represents no code.
	None Code = iota

	// NoOp is the dispatch-suppression sentinel. If a NoOp event is present
	// in a frame's log, no action fires that frame.
	NoOp

	// Special keys
	Escape
	Enter
	Tab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown

	// Arrow keys
	Up
	Down
	Left
	Right

	// Modifier keys
	Shift
	Ctrl
	Alt
	Meta

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Space
)

// Letter keys.
const (
	A Code = iota + 0x0100
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Digit keys.
const (
	Num0 Code = iota + 0x0200
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
)

// Pointer buttons.
const (
	MouseLeft Code = iota + pointerBase
	MouseMiddle
	MouseRight
	MouseBack
	MouseForward
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

// Gamepad buttons.
const (
	PadA Code = iota + gamepadBase
	PadB
	PadX
	PadY
	PadL1
	PadR1
	PadL2
	PadR2
	PadStart
	PadSelect
	PadUp
	PadDown
	PadLeft
	PadRight
)

// Class returns the device class this code belongs to.
func (c Code) Class() Class {
	switch {
	case c == None || c == NoOp:
		return ClassNone
	case c < pointerBase:
		return ClassKeyboard
	case c < gamepadBase:
		return ClassPointer
	default:
		return ClassGamepad
	}
}

// IsModifierKey returns true for the dedicated modifier keys.
// Any code may serve as a stroke modifier; these are merely the usual ones.
func (c Code) IsModifierKey() bool {
	return c == Shift || c == Ctrl || c == Alt || c == Meta
}

// IsArrowKey returns true if this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= Up && c <= Right
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (c Code) IsFunctionKey() bool {
	return c >= F1 && c <= F12
}

// IsLetter returns true if this is a letter key.
func (c Code) IsLetter() bool {
	return c >= A && c <= Z
}

// IsDigit returns true if this is a digit key.
func (c Code) IsDigit() bool {
	return c >= Num0 && c <= Num9
}

// IsWheel returns true if this is a scroll wheel code.
func (c Code) IsWheel() bool {
	return c >= WheelUp && c <= WheelRight
}

// String returns the canonical lowercase name for the code. Letters and
// digits render as their single character, the inverse of FromName.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	switch {
	case c.IsLetter():
		return string(rune('a' + (c - A)))
	case c.IsDigit():
		return string(rune('0' + (c - Num0)))
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}
