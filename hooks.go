package framework

import "sync"

// ActionRegistrar registers callbacks against named lifecycle events.
type ActionRegistrar interface {
	AddAction(event string, fn func() error)
}

// TagFilter rewrites a rendered asset tag. The handle names the asset
// the tag belongs to; implementations must return the tag unchanged
// when it is not theirs.
type TagFilter func(tag, handle string) string

// FilterRegistrar registers tag-rewriting callbacks against named
// rendering filters.
type FilterRegistrar interface {
	AddFilter(name string, fn TagFilter)
}

// Registrars combines the registration ports an asset needs. *Hooks
// implements it.
type Registrars interface {
	ActionRegistrar
	FilterRegistrar
}

// Hooks is an in-memory action and filter registry. The zero value is
// not usable; create one with NewHooks. Safe for concurrent use.
type Hooks struct {
	mu      sync.RWMutex
	actions map[string][]func() error
	filters map[string][]TagFilter
}

// NewHooks creates an empty registry.
func NewHooks() *Hooks {
	return &Hooks{
		actions: make(map[string][]func() error),
		filters: make(map[string][]TagFilter),
	}
}

// AddAction registers fn to run when event fires.
func (h *Hooks) AddAction(event string, fn func() error) {
	h.mu.Lock()
	h.actions[event] = append(h.actions[event], fn)
	h.mu.Unlock()
}

// AddFilter registers fn under the named rendering filter.
func (h *Hooks) AddFilter(name string, fn TagFilter) {
	h.mu.Lock()
	h.filters[name] = append(h.filters[name], fn)
	h.mu.Unlock()
}

// Do fires event, running callbacks in registration order. The first
// error stops the run and is returned. Unregistered events are a no-op.
func (h *Hooks) Do(event string) error {
	h.mu.RLock()
	fns := make([]func() error, len(h.actions[event]))
	copy(fns, h.actions[event])
	h.mu.RUnlock()

	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs tag through every filter registered under name, in
// registration order, and returns the result.
func (h *Hooks) Apply(name, tag, handle string) string {
	h.mu.RLock()
	fns := make([]TagFilter, len(h.filters[name]))
	copy(fns, h.filters[name])
	h.mu.RUnlock()

	for _, fn := range fns {
		tag = fn(tag, handle)
	}
	return tag
}
