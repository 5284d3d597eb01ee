package frame

import (
	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
)

// Activity is what a device reported about a code this frame.
type Activity uint8

const (
	// Pressed indicates the code went down this frame. Key auto-repeat
	// arrives as repeated Pressed events.
	Pressed Activity = iota

	// Held indicates the code was already down and is still down.
	Held

	// Released indicates the code came up this frame.
	Released
)

// String returns the activity name.
func (a Activity) String() string {
	switch a {
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Callback receives an action fired by an event. active is true on the
// frame the action is newly confirmed (press for keys, release for pointer
// buttons) and false for while-held reports. The return value is whether
// the receiver consumed the action.
//
// Callbacks are borrowed references into node handler closures; they are
// only valid during the frame that created the event.
type Callback func(act action.ID, active bool, seq uint64) bool

// Event is one raw input event as received this frame. Events live in the
// dispatcher's log for at most one frame.
type Event struct {
	// Code identifies the physical primitive.
	Code code.Code

	// Seq is the platform adapter's sequence number for this event.
	Seq uint64

	// Activity is what happened to Code this frame.
	Activity Activity

	// Deliver receives any action this event triggers.
	Deliver Callback
}
