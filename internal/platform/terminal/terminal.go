package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/input/code"
	"github.com/dshills/glint/internal/input/frame"
	"github.com/dshills/glint/internal/input/route"
)

// Adapter translates tcell terminal events into the dispatcher's event
// log. Keyboard codes carry the focus router's callback and pointer codes
// the hover router's, so a fired trigger is delivered along the path its
// device implies.
//
// The adapter is frame-driven and single-threaded: NextFrame blocks for
// input, feeds everything buffered into the dispatcher, and returns so the
// caller can resolve and render.
type Adapter struct {
	screen     tcell.Screen
	dispatcher *frame.Dispatcher
	cfg        *config.Config
	gate       *repeatGate

	keySink     frame.Callback
	pointerSink frame.Callback
	resizeFn    func(width, height int)

	seq      uint64
	buttons  tcell.ButtonMask
	pos      route.Point
	releases []code.Code

	interrupted bool
}

// New creates an adapter on a real terminal screen.
func New(d *frame.Dispatcher, cfg *config.Config) (*Adapter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, d, cfg), nil
}

// NewWithScreen creates an adapter on a caller-supplied screen, e.g. a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen, d *frame.Dispatcher, cfg *config.Config) *Adapter {
	return &Adapter{
		screen:     screen,
		dispatcher: d,
		cfg:        cfg,
		gate:       newRepeatGate(cfg.KeyRepeatDelay, cfg.KeyRepeatInterval),
	}
}

// SetKeySink routes keyboard-code deliveries, normally to Focus.Deliver.
func (a *Adapter) SetKeySink(fn frame.Callback) {
	a.keySink = fn
}

// SetPointerSink routes pointer-code deliveries, normally to Hover.Deliver.
func (a *Adapter) SetPointerSink(fn frame.Callback) {
	a.pointerSink = fn
}

// OnResize registers a callback for terminal size changes.
func (a *Adapter) OnResize(fn func(width, height int)) {
	a.resizeFn = fn
}

// Init initializes the screen and enables the input modes the config
// asks for.
func (a *Adapter) Init() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	if a.cfg.MouseEnabled {
		a.screen.EnableMouse()
	}
	a.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (a *Adapter) Fini() {
	a.screen.Fini()
}

// Screen exposes the underlying screen for rendering.
func (a *Adapter) Screen() tcell.Screen {
	return a.screen
}

// Size returns the terminal dimensions.
func (a *Adapter) Size() (int, int) {
	return a.screen.Size()
}

// PointerPosition returns the last reported pointer position. Pass it to
// Hover.Frame before resolving.
func (a *Adapter) PointerPosition() route.Point {
	return a.pos
}

// Interrupt wakes a blocked NextFrame and makes it return false. Safe to
// call from another goroutine, e.g. a signal handler.
func (a *Adapter) Interrupt() {
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// NextFrame gathers one frame's worth of input: it first logs the
// synthesized key releases owed from the previous frame, then blocks for
// an event and drains whatever else is buffered. Returns false once
// interrupted.
func (a *Adapter) NextFrame() bool {
	a.flushReleases()

	ev := a.screen.PollEvent()
	if ev == nil {
		return false
	}
	a.feed(ev)
	for a.screen.HasPendingEvent() {
		ev = a.screen.PollEvent()
		if ev == nil {
			return false
		}
		a.feed(ev)
	}
	return !a.interrupted
}

// feed converts one terminal event into log entries.
func (a *Adapter) feed(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.feedKey(e)
	case *tcell.EventMouse:
		a.feedMouse(e)
	case *tcell.EventResize:
		if a.resizeFn != nil {
			a.resizeFn(e.Size())
		}
	case *tcell.EventInterrupt:
		a.interrupted = true
	}
}

// feedKey logs a key press plus the modifier keys held around it. The
// terminal never reports key releases, so each press owes a synthesized
// release at the start of the next frame.
func (a *Adapter) feedKey(ev *tcell.EventKey) {
	c := keyCode(ev)
	if c == code.None {
		return
	}
	if !a.gate.allow(c) {
		return
	}

	mods := ev.Modifiers()
	if isCtrlKey(ev.Key()) {
		mods |= tcell.ModCtrl
	}
	a.emitMods(mods)

	a.emit(c, frame.Pressed, a.keySink)
	a.releases = append(a.releases, c)
}

// feedMouse logs pointer button transitions, wheel ticks, and drags.
func (a *Adapter) feedMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := route.Point{X: x, Y: y}
	moved := pos != a.pos
	a.pos = pos

	a.emitMods(ev.Modifiers())

	mask := ev.Buttons()

	// Wheel bits are momentary: a tick is a press and release in the
	// same frame, confirming immediately.
	for _, w := range wheelCodes {
		if mask&w.mask != 0 {
			a.emit(w.code, frame.Pressed, a.pointerSink)
			a.emit(w.code, frame.Released, a.pointerSink)
		}
	}
	mask &^= wheelMask

	// Motion with a button down is a drag; suppress dispatch this frame
	// but keep the transition bookkeeping below.
	if moved && a.buttons != 0 && mask != 0 {
		a.dispatcher.EmitNoOp()
	}

	for _, b := range pointerButtons {
		was := a.buttons&b.mask != 0
		is := mask&b.mask != 0
		switch {
		case is && !was:
			a.emit(b.code, frame.Pressed, a.pointerSink)
		case was && !is:
			a.emit(b.code, frame.Released, a.pointerSink)
		}
	}
	a.buttons = mask
}

// flushReleases logs the key releases owed from the previous frame.
func (a *Adapter) flushReleases() {
	for _, c := range a.releases {
		a.emit(c, frame.Released, a.keySink)
	}
	a.releases = a.releases[:0]
}

// emitMods logs the held modifier keys so layer selection can see them.
// Modifiers carry no sink; they never fire triggers on their own here.
func (a *Adapter) emitMods(m tcell.ModMask) {
	for _, mc := range modCodes(m) {
		a.emit(mc, frame.Held, nil)
	}
}

func (a *Adapter) emit(c code.Code, act frame.Activity, sink frame.Callback) {
	a.seq++
	a.dispatcher.Emit(c, a.seq, act, sink)
}
