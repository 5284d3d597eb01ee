package frame

import "github.com/dshills/glint/internal/input/code"

// Log is the transient buffer of raw events received during the current
// frame. It is owned exclusively by the Dispatcher and cleared at the end
// of every Resolve, whatever the outcome; no reference into it may outlive
// the frame.
type Log struct {
	events []Event
}

// Append adds an event to the log.
func (l *Log) Append(ev Event) {
	l.events = append(l.events, ev)
}

// Len returns the number of events logged this frame.
func (l *Log) Len() int {
	return len(l.events)
}

// Contains reports whether any event for c was logged this frame.
func (l *Log) Contains(c code.Code) bool {
	for i := range l.events {
		if l.events[i].Code == c {
			return true
		}
	}
	return false
}

// Each visits every event in arrival order. Fallback frame listeners use
// this to inspect unclaimed input, e.g. for literal text entry.
func (l *Log) Each(fn func(Event)) {
	for i := range l.events {
		fn(l.events[i])
	}
}

// heldThisFrame reports whether c is down according to this frame's
// events alone: a Pressed or Held event counts, a Released one does not.
func (l *Log) heldThisFrame(c code.Code) bool {
	for i := range l.events {
		ev := &l.events[i]
		if ev.Code == c && (ev.Activity == Pressed || ev.Activity == Held) {
			return true
		}
	}
	return false
}

// match returns the event a trigger on c should consume: the first event
// whose activity confirms the trigger if one exists, otherwise the first
// event reporting c down (which yields a while-held report). A Released
// event never produces a while-held report; the code is no longer down.
func (l *Log) match(c code.Code, confirms func(Activity) bool) (*Event, bool) {
	var first *Event
	for i := range l.events {
		ev := &l.events[i]
		if ev.Code != c {
			continue
		}
		if confirms(ev.Activity) {
			return ev, true
		}
		if first == nil && ev.Activity != Released {
			first = ev
		}
	}
	return first, first != nil
}

// clear empties the log, retaining capacity for the next frame.
func (l *Log) clear() {
	l.events = l.events[:0]
}
