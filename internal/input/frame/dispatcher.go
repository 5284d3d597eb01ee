package frame

import (
	"github.com/google/uuid"

	"github.com/dshills/glint/internal/input/code"
	"github.com/dshills/glint/internal/input/mapping"
)

// downState tracks a pointer button across frames. A button is down from
// press until release and stays down for exactly one extra frame after
// release, so release-triggered actions can still observe the flag.
type downState uint8

const (
	downHeld     downState = iota + 1 // pressed, not yet released
	downReleased                      // released this frame
	downGrace                         // one frame past release
)

// FrameFunc is a fallback listener invoked when a frame's events resolve
// without any action claiming them. The log is valid only for the duration
// of the call and must not be retained.
type FrameFunc func(log *Log)

// Result reports how one frame's event set resolved.
type Result struct {
	// Handled is true when some trigger fired and its receiver claimed
	// the input.
	Handled bool

	// Suppressed is true when the no-op sentinel ended the frame before
	// any layer was considered.
	Suppressed bool

	// FellThrough is true when no action claimed the input and the
	// fallback frame notification was emitted instead.
	FellThrough bool
}

type frameListener struct {
	token string
	fn    FrameFunc
}

// Dispatcher resolves one frame's raw input into at most one winning set
// of fired actions. It owns the per-frame event log exclusively and runs
// strictly single-threaded: collect events, call Resolve once, repeat.
type Dispatcher struct {
	mapping   *mapping.Mapping
	log       Log
	down      map[code.Code]downState
	listeners []frameListener
}

// New creates a dispatcher resolving against m.
func New(m *mapping.Mapping) *Dispatcher {
	return &Dispatcher{
		mapping: m,
		down:    make(map[code.Code]downState),
	}
}

// SetMapping swaps the keymap, e.g. after a keymap file reload. Call it
// between frames only.
func (d *Dispatcher) SetMapping(m *mapping.Mapping) {
	d.mapping = m
}

// Emit is the platform adapter's entry point: it records one raw event in
// the current frame's log. deliver may be nil for events no router cares
// about (the event still satisfies modifiers and the fallback log).
func (d *Dispatcher) Emit(c code.Code, seq uint64, activity Activity, deliver Callback) {
	d.log.Append(Event{Code: c, Seq: seq, Activity: activity, Deliver: deliver})
}

// EmitNoOp logs the dispatch-suppression sentinel, preventing any action
// from firing this frame. Used during drags.
func (d *Dispatcher) EmitNoOp() {
	d.log.Append(Event{Code: code.NoOp})
}

// OnFrame subscribes a fallback listener and returns its removal token.
func (d *Dispatcher) OnFrame(fn FrameFunc) string {
	token := uuid.New().String()
	d.listeners = append(d.listeners, frameListener{token: token, fn: fn})
	return token
}

// RemoveFrameListener unsubscribes a fallback listener.
func (d *Dispatcher) RemoveFrameListener(token string) {
	for i, l := range d.listeners {
		if l.token == token {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// IsDown reports whether a pointer button is down, including the one-frame
// grace period after its release. Keyboard and gamepad codes have no
// cross-frame state and always report false.
func (d *Dispatcher) IsDown(c code.Code) bool {
	_, ok := d.down[c]
	return ok
}

// Resolve runs the per-frame dispatch pass over the collected events and
// unconditionally clears the log afterwards.
//
// The algorithm: pick the first layer (most modifiers first) whose every
// modifier is held; within it, try triggers in declaration order against
// the log, stopping at the first one a receiver claims. If nothing claims
// the input, notify the fallback frame listeners.
func (d *Dispatcher) Resolve() Result {
	defer d.endFrame()

	d.trackPointerState()

	if d.log.Contains(code.NoOp) {
		return Result{Suppressed: true}
	}

	handled := false
	if layer := d.activeLayer(); layer != nil {
		handled = d.fireLayer(layer)
	}
	if handled {
		return Result{Handled: true}
	}

	for _, l := range d.listeners {
		l.fn(&d.log)
	}
	return Result{FellThrough: true}
}

// trackPointerState updates the cross-frame down flags from this frame's
// pointer events. Runs before the sentinel check so a suppressed frame
// still keeps press/release bookkeeping consistent.
func (d *Dispatcher) trackPointerState() {
	for i := range d.log.events {
		ev := &d.log.events[i]
		if ev.Code.Class() != code.ClassPointer {
			continue
		}
		switch ev.Activity {
		case Pressed:
			d.down[ev.Code] = downHeld
		case Released:
			d.down[ev.Code] = downReleased
		}
	}
}

// activeLayer returns the first layer whose full modifier set is held this
// frame. At most one layer is ever active per frame.
func (d *Dispatcher) activeLayer() *mapping.Layer {
	for _, layer := range d.mapping.Layers() {
		if layer.Satisfied(d.codeHeld) {
			return layer
		}
	}
	return nil
}

// codeHeld reports whether c is currently held, for modifier checks.
// Pointer buttons count as held from press through the grace frame.
func (d *Dispatcher) codeHeld(c code.Code) bool {
	if _, ok := d.down[c]; ok {
		return true
	}
	return d.log.heldThisFrame(c)
}

// fireLayer tries the layer's triggers in declaration order. First
// successful match wins; later triggers are not consulted once one is
// claimed.
func (d *Dispatcher) fireLayer(layer *mapping.Layer) bool {
	for _, tr := range layer.Bindings {
		confirms := confirmsFor(tr.Code)
		ev, ok := d.log.match(tr.Code, confirms)
		if !ok || ev.Deliver == nil {
			continue
		}
		if ev.Deliver(tr.Action, confirms(ev.Activity), ev.Seq) {
			return true
		}
	}
	return false
}

// confirmsFor returns the activity predicate that newly confirms a trigger
// on c: press for keyboard and gamepad codes (repeat counts as another
// press), release for pointer buttons so a press-drag-away can cancel.
func confirmsFor(c code.Code) func(Activity) bool {
	if c.Class() == code.ClassPointer {
		return func(a Activity) bool { return a == Released }
	}
	return func(a Activity) bool { return a == Pressed }
}

// endFrame clears the log and ages the pointer down flags: released
// buttons enter their grace frame, grace-frame buttons clear.
func (d *Dispatcher) endFrame() {
	d.log.clear()
	for c, st := range d.down {
		switch st {
		case downReleased:
			d.down[c] = downGrace
		case downGrace:
			delete(d.down, c)
		}
	}
}
