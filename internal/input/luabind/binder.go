// Package luabind runs user init scripts that declare actions and bind
// strokes from Lua.
package luabind

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/mapping"
)

// Binder wraps a sandboxed Lua state exposing the glint module. Scripts
// mutate the wired mapping and action registry directly; there is no
// deferred command queue.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes Go-side
// calls, but scripts themselves always run single-threaded.
type Binder struct {
	mu       sync.Mutex
	L        *lua.LState
	mapping  *mapping.Mapping
	registry *action.Registry
	closed   bool
}

// New creates a binder whose scripts operate on m and reg.
func New(m *mapping.Mapping, reg *action.Registry) *Binder {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// Safe subset only: no io, os, debug, or package.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	b := &Binder{L: L, mapping: m, registry: reg}
	b.installModule()
	return b
}

// installModule registers the glint table with the script-facing API.
func (b *Binder) installModule() {
	mod := b.L.SetFuncs(b.L.NewTable(), map[string]lua.LGFunction{
		"declare": b.luaDeclare,
		"bind":    b.luaBind,
		"actions": b.luaActions,
	})
	b.L.SetGlobal("glint", mod)
}

// luaDeclare implements glint.declare(name) -> id.
func (b *Binder) luaDeclare(L *lua.LState) int {
	name := L.CheckString(1)
	id, err := b.registry.Declare(name)
	if err != nil {
		L.RaiseError("declare: %v", err)
	}
	L.Push(lua.LNumber(id))
	return 1
}

// luaBind implements glint.bind(actionName, stroke). The action must
// already be declared; the stroke uses the same notation as keymap files.
func (b *Binder) luaBind(L *lua.LState) int {
	name := L.CheckString(1)
	stroke := L.CheckString(2)

	id, ok := b.registry.Lookup(name)
	if !ok {
		L.RaiseError("bind: unknown action %q", name)
	}
	if err := b.mapping.BindStroke(id, stroke); err != nil {
		L.RaiseError("bind: %v", err)
	}
	return 0
}

// luaActions implements glint.actions() -> array of declared names.
func (b *Binder) luaActions(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range b.registry.Names() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// RunFile executes an init script from disk.
func (b *Binder) RunFile(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBinderClosed
	}
	return b.recovered(func() error {
		return b.L.DoFile(path)
	})
}

// RunString executes inline script source, mainly for tests and the
// demo's -e flag.
func (b *Binder) RunString(src string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBinderClosed
	}
	return b.recovered(func() error {
		return b.L.DoString(src)
	})
}

// recovered converts a Lua panic into an error.
func (b *Binder) recovered(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the Lua state. Further calls return ErrBinderClosed.
func (b *Binder) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.L.Close()
	b.closed = true
	return nil
}
