package terminal

import (
	"time"

	"github.com/dshills/glint/internal/input/code"
)

// repeatGate normalizes terminal key autorepeat. Terminals repeat held
// keys at their own rate with no release events, so the gate treats a
// same-key arrival hot on the heels of the previous one as autorepeat:
// repeats are suppressed until the configured delay elapses and then
// throttled to the configured interval. A gap longer than two intervals
// reads as a fresh press.
type repeatGate struct {
	delay    time.Duration
	interval time.Duration
	now      func() time.Time

	last      code.Code
	pressedAt time.Time
	lastSeen  time.Time
	lastEmit  time.Time
}

func newRepeatGate(delay, interval time.Duration) *repeatGate {
	return &repeatGate{
		delay:    delay,
		interval: interval,
		now:      time.Now,
	}
}

// allow reports whether this key arrival should reach the event log.
func (g *repeatGate) allow(c code.Code) bool {
	now := g.now()

	if c != g.last || now.Sub(g.lastSeen) > 2*g.interval {
		g.last = c
		g.pressedAt = now
		g.lastSeen = now
		g.lastEmit = now
		return true
	}

	g.lastSeen = now
	if now.Sub(g.pressedAt) < g.delay {
		return false
	}
	if now.Sub(g.lastEmit) < g.interval {
		return false
	}
	g.lastEmit = now
	return true
}
