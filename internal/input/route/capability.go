package route

// Hoverable is an embeddable hover capability. A node type embeds it to
// receive enter/leave notifications from the hover router and to let its
// renderer query the current state.
type Hoverable struct {
	hovered bool

	// OnHoverChange, if set, is called whenever the hover state flips.
	OnHoverChange func(bool)
}

// SetHovered records the hover state, called by the hover router.
func (h *Hoverable) SetHovered(hovered bool) {
	if h.hovered == hovered {
		return
	}
	h.hovered = hovered
	if h.OnHoverChange != nil {
		h.OnHoverChange(hovered)
	}
}

// IsHovered reports whether the pointer is over the node.
func (h *Hoverable) IsHovered() bool {
	return h.hovered
}

// Focusable is an embeddable focus capability, the keyboard counterpart
// of Hoverable.
type Focusable struct {
	focused bool

	// OnFocusChange, if set, is called whenever the focus state flips.
	OnFocusChange func(bool)
}

// SetFocused records the focus state, called by the focus router.
func (f *Focusable) SetFocused(focused bool) {
	if f.focused == focused {
		return
	}
	f.focused = focused
	if f.OnFocusChange != nil {
		f.OnFocusChange(focused)
	}
}

// IsFocused reports whether the node holds focus.
func (f *Focusable) IsFocused() bool {
	return f.focused
}
