package action

import (
	"fmt"
	"sync"
)

// ID is a process-wide stable identifier for one semantic input action.
// IDs are assigned by a Registry at declaration time and compared by value;
// two IDs are equal iff they denote the same declared action name.
type ID uint32

// None is the zero ID; no declared action ever has it.
const None ID = 0

// String returns the declared name for IDs from the default registry.
func (id ID) String() string {
	if name, ok := defaultRegistry.NameOf(id); ok {
		return name
	}
	return fmt.Sprintf("action(%d)", uint32(id))
}

// Registry assigns stable IDs to action names. Declaring the same name
// twice returns the same ID, so independent packages may declare shared
// actions without coordination.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ID
	names  []string // index = ID-1
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]ID),
	}
}

// Declare registers an action name and returns its ID.
// Names use the "namespace.action" convention, e.g. "edit.copy".
func (r *Registry) Declare(name string) (ID, error) {
	if name == "" {
		return None, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return id, nil
	}

	r.names = append(r.names, name)
	id := ID(len(r.names))
	r.byName[name] = id
	return id, nil
}

// MustDeclare is Declare for package-level action variables; it panics on
// an invalid name, which is a programming error caught at startup.
func (r *Registry) MustDeclare(name string) ID {
	id, err := r.Declare(name)
	if err != nil {
		panic(fmt.Sprintf("action: declaring %q: %v", name, err))
	}
	return id
}

// Lookup returns the ID for a declared name.
func (r *Registry) Lookup(name string) (ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// NameOf returns the declared name for an ID.
func (r *Registry) NameOf(id ID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == None || int(id) > len(r.names) {
		return "", false
	}
	return r.names[id-1], true
}

// Count returns the number of declared actions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Names returns all declared names in declaration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// defaultRegistry backs the package-level declarations in ids.go.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry holding the canonical actions.
func Default() *Registry {
	return defaultRegistry
}

// Declare registers a name in the default registry.
func Declare(name string) (ID, error) {
	return defaultRegistry.Declare(name)
}

// MustDeclare registers a name in the default registry, panicking on error.
func MustDeclare(name string) ID {
	return defaultRegistry.MustDeclare(name)
}

// Lookup resolves a name in the default registry.
func Lookup(name string) (ID, bool) {
	return defaultRegistry.Lookup(name)
}
