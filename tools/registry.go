package tools

import (
	"errors"
	"fmt"
	"sync"
)

// WebSearchToolName is declared to the model host but executed entirely by
// it; the registry carries no local handler for it.
const WebSearchToolName = "web_search"

var (
	// ErrDuplicateTool reports a second registration under the same name.
	ErrDuplicateTool = errors.New("tool already registered")
	// ErrUnknownTool reports a lookup for a name nobody registered.
	ErrUnknownTool = errors.New("unknown tool")
)

// Registry keeps the mapping between tool names and definitions, preserving
// registration order for host declaration. Registration happens once at
// startup; lookups are read-only and safe across concurrent analysis runs.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	defs       map[string]Definition
	hostNative map[string]struct{}
}

// NewRegistry creates an empty Registry with web_search pre-declared as a
// host-native capability.
func NewRegistry() *Registry {
	return &Registry{
		defs:       make(map[string]Definition),
		hostNative: map[string]struct{}{WebSearchToolName: {}},
	}
}

// Register adds a tool definition. The name must be non-empty, unique, and
// not collide with a host-native declaration.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if def.Function == nil {
		return fmt.Errorf("tool %s has no handler", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hostNative[def.Name]; ok {
		return fmt.Errorf("%w: %s is host-native", ErrDuplicateTool, def.Name)
	}
	if _, ok := r.defs[def.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Resolve returns the handler registered under name.
func (r *Registry) Resolve(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return def.Function, nil
}

// IsHostNative reports whether name is executed by the model host rather
// than dispatched locally.
func (r *Registry) IsHostNative(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.hostNative[name]
	return ok
}

// Definitions returns locally dispatched tools in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}
