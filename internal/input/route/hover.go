package route

import (
	"time"

	"github.com/dshills/glint/internal/input/action"
)

const (
	defaultMultiClickTime = 500 * time.Millisecond
	defaultMultiClickDist = 3
)

// hoverAware is implemented by nodes that want enter/leave notifications.
type hoverAware interface {
	SetHovered(bool)
}

// gesture tracks one in-flight press from first while-held report to
// commit. Gestures are keyed by action so one button's release cannot
// disturb another button's slip state.
type gesture struct {
	origin  Node
	slipped bool
}

// Hover routes pointer-origin action deliveries to the node under the
// pointer. It owns the press-slip rule: a press gesture belongs to the
// node it started on, and dragging off that node before release cancels
// the gesture for everyone. The node under the pointer at release does
// not inherit a slipped press.
//
// Hover also counts consecutive clicks on the same spot so widgets can
// implement double and triple click behavior.
type Hover struct {
	tester HitTester
	now    func() time.Time

	multiClickTime time.Duration
	multiClickDist int

	hovered  Node
	gestures map[action.ID]*gesture

	clickCount   int
	lastClickAt  time.Time
	lastClickPos Point
	pos          Point
}

// HoverOption configures a Hover router.
type HoverOption func(*Hover)

// WithMultiClick sets the maximum delay and pointer travel between clicks
// that still count as one multi-click sequence.
func WithMultiClick(within time.Duration, dist int) HoverOption {
	return func(h *Hover) {
		h.multiClickTime = within
		h.multiClickDist = dist
	}
}

// WithClock overrides the time source used for click counting.
func WithClock(now func() time.Time) HoverOption {
	return func(h *Hover) {
		h.now = now
	}
}

// NewHover creates a hover router that resolves positions through tester.
func NewHover(tester HitTester, opts ...HoverOption) *Hover {
	h := &Hover{
		tester:         tester,
		now:            time.Now,
		multiClickTime: defaultMultiClickTime,
		multiClickDist: defaultMultiClickDist,
		gestures:       make(map[action.ID]*gesture),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hovered returns the node currently under the pointer, or nil.
func (h *Hover) Hovered() Node {
	return h.hovered
}

// ClickCount returns the current consecutive-click count: 1 for the first
// click, 2 for a double click, and so on. Valid during the delivery of a
// committed press.
func (h *Hover) ClickCount() int {
	return h.clickCount
}

// Frame updates the hovered node from the pointer position. Call it once
// per frame, before Resolve. Moving off the press-origin node while a
// button is down marks the gesture slipped; it stays slipped even if the
// pointer returns.
func (h *Hover) Frame(pos Point) {
	h.pos = pos

	var over Node
	if h.tester != nil {
		over = h.tester.HitTest(pos)
	}
	if over != h.hovered {
		if aware, ok := h.hovered.(hoverAware); ok {
			aware.SetHovered(false)
		}
		if aware, ok := over.(hoverAware); ok {
			aware.SetHovered(true)
		}
		h.hovered = over
	}
	for _, g := range h.gestures {
		if h.hovered != g.origin {
			g.slipped = true
		}
	}
}

// Deliver is the pointer-event callback handed to the dispatcher. Inactive
// deliveries report the in-progress press to its origin node; the active
// delivery commits the gesture if the pointer never slipped off the origin,
// and swallows it otherwise.
func (h *Hover) Deliver(act action.ID, active bool, seq uint64) bool {
	if !active {
		return h.deliverHeld(act)
	}
	return h.deliverCommit(act)
}

func (h *Hover) deliverHeld(act action.ID) bool {
	g, ok := h.gestures[act]
	if !ok {
		g = &gesture{origin: h.hovered}
		h.gestures[act] = g
	}
	if g.slipped {
		// The gesture still owns the input even when it can no longer
		// commit; nothing else should claim these frames.
		return true
	}
	if g.origin == nil {
		return false
	}
	g.origin.RunInputAction(act, false)
	return true
}

func (h *Hover) deliverCommit(act action.ID) bool {
	g, ok := h.gestures[act]
	delete(h.gestures, act)

	if ok && g.slipped {
		// Cancelled gesture: the origin lost it and the node under the
		// pointer never had it. Swallow the release.
		return true
	}

	var target Node
	if ok {
		target = g.origin
	} else {
		// No tracked press, e.g. a wheel tick. Route to whatever is
		// under the pointer.
		target = h.hovered
	}
	if target == nil {
		return false
	}

	h.countClick()
	return target.RunInputAction(act, true)
}

// countClick advances the consecutive-click counter, resetting it when the
// pointer moved too far or too much time passed since the previous click.
func (h *Hover) countClick() {
	now := h.now()
	if h.clickCount > 0 &&
		now.Sub(h.lastClickAt) <= h.multiClickTime &&
		h.pos.Distance(h.lastClickPos) <= h.multiClickDist {
		h.clickCount++
	} else {
		h.clickCount = 1
	}
	h.lastClickAt = now
	h.lastClickPos = h.pos
}
