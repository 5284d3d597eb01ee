package dispatch

import "github.com/dshills/glint/internal/input/action"

// Context carries one incoming action delivery to a handler.
type Context struct {
	// Action is the fired action.
	Action action.ID

	// Active is true on the frame the action is newly confirmed and
	// false for while-held reports.
	Active bool
}

// Func handles one action delivery and reports whether it consumed it.
type Func func(Context) bool

// Entry is one handler in a node type's dispatch table.
type Entry struct {
	// Run is the handler behavior.
	Run Func

	// WhileHeld handlers fire every frame their action is reported down,
	// even when Context.Active is false. Ordinary handlers only fire on
	// the newly-confirmed frame.
	WhileHeld bool
}

// Table maps action IDs to handlers for one node type. Build a Table once
// per type (typically in a package-level var or sync.OnceValue), not per
// node instance; per-instance state belongs in the handler closures'
// receiver, reached through the Context-free constructor pattern below.
//
// A Table may derive from a parent: lookups fall back to the parent chain,
// which is how a specialized node type overrides or extends the behavior
// of its base type without inheritance.
type Table struct {
	parent  *Table
	entries map[action.ID]Entry
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{entries: make(map[action.ID]Entry)}
}

// Derive creates a table that falls back to parent for actions it does
// not bind itself.
func Derive(parent *Table) *Table {
	return &Table{parent: parent, entries: make(map[action.ID]Entry)}
}

// Handle binds an ordinary handler; its return value is the consumed flag.
// Binding the same action again replaces the earlier entry, which is how a
// derived table overrides its parent.
func (t *Table) Handle(id action.ID, fn Func) *Table {
	t.entries[id] = Entry{Run: fn}
	return t
}

// HandleFunc binds a handler with no result; it always counts as consumed.
func (t *Table) HandleFunc(id action.ID, fn func(Context)) *Table {
	t.entries[id] = Entry{Run: func(ctx Context) bool {
		fn(ctx)
		return true
	}}
	return t
}

// HandleHeld binds a while-held handler, fired every frame the action is
// down regardless of Context.Active.
func (t *Table) HandleHeld(id action.ID, fn Func) *Table {
	t.entries[id] = Entry{Run: fn, WhileHeld: true}
	return t
}

// lookup finds the entry for id, walking the parent chain.
func (t *Table) lookup(id action.ID) (Entry, bool) {
	for tbl := t; tbl != nil; tbl = tbl.parent {
		if e, ok := tbl.entries[id]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Has reports whether the table (or an ancestor) binds id.
func (t *Table) Has(id action.ID) bool {
	_, ok := t.lookup(id)
	return ok
}

// Run dispatches one delivery. Unmatched actions are not an error; they
// report unconsumed so the caller can try the next candidate. A matched
// ordinary entry only runs when active is true; a while-held entry runs
// either way.
func (t *Table) Run(id action.ID, active bool) bool {
	e, ok := t.lookup(id)
	if !ok {
		return false
	}
	if !active && !e.WhileHeld {
		return false
	}
	return e.Run(Context{Action: id, Active: active})
}
