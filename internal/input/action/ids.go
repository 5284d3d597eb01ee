package action

// Canonical actions. Declared once at program start; widgets and the
// default mapping refer to these by value.
var (
	// Node interaction
	Press    = MustDeclare("node.press")
	AltPress = MustDeclare("node.altPress")
	Submit   = MustDeclare("node.submit")
	Cancel   = MustDeclare("node.cancel")

	// Focus lifecycle, delivered by the focus router on focus changes.
	FocusGained = MustDeclare("focus.gained")
	FocusLost   = MustDeclare("focus.lost")

	// Focus navigation. If the focused node leaves these unhandled the
	// focus router moves focus itself.
	FocusNext  = MustDeclare("focus.next")
	FocusPrev  = MustDeclare("focus.prev")
	FocusUp    = MustDeclare("focus.up")
	FocusDown  = MustDeclare("focus.down")
	FocusLeft  = MustDeclare("focus.left")
	FocusRight = MustDeclare("focus.right")

	// Caret movement
	CaretUp        = MustDeclare("caret.up")
	CaretDown      = MustDeclare("caret.down")
	CaretLeft      = MustDeclare("caret.left")
	CaretRight     = MustDeclare("caret.right")
	CaretWordLeft  = MustDeclare("caret.wordLeft")
	CaretWordRight = MustDeclare("caret.wordRight")
	CaretLineStart = MustDeclare("caret.lineStart")
	CaretLineEnd   = MustDeclare("caret.lineEnd")
	CaretDocStart  = MustDeclare("caret.docStart")
	CaretDocEnd    = MustDeclare("caret.docEnd")

	// Selection
	SelectAll       = MustDeclare("select.all")
	SelectUp        = MustDeclare("select.up")
	SelectDown      = MustDeclare("select.down")
	SelectLeft      = MustDeclare("select.left")
	SelectRight     = MustDeclare("select.right")
	SelectWordLeft  = MustDeclare("select.wordLeft")
	SelectWordRight = MustDeclare("select.wordRight")
	SelectToStart   = MustDeclare("select.toStart")
	SelectToEnd     = MustDeclare("select.toEnd")

	// Editing
	Copy      = MustDeclare("edit.copy")
	Cut       = MustDeclare("edit.cut")
	Paste     = MustDeclare("edit.paste")
	Undo      = MustDeclare("edit.undo")
	Redo      = MustDeclare("edit.redo")
	DeleteFwd = MustDeclare("edit.deleteForward")
	DeleteBwd = MustDeclare("edit.deleteBackward")

	// Scrolling
	ScrollUp       = MustDeclare("scroll.up")
	ScrollDown     = MustDeclare("scroll.down")
	ScrollLeft     = MustDeclare("scroll.left")
	ScrollRight    = MustDeclare("scroll.right")
	ScrollPageUp   = MustDeclare("scroll.pageUp")
	ScrollPageDown = MustDeclare("scroll.pageDown")
)
