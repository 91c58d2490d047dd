package hxhook

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry associates hook maps with components, one table per Group.
//
// Components are keyed by identity, so handles must be comparable; pointers
// are the usual choice. Hook maps are attached once at definition time and
// never replaced.
type Registry struct {
	mu     sync.RWMutex
	groups map[Group]map[Component]*HookMap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[Group]map[Component]*HookMap),
	}
}

// Attach associates hooks with component in group.
//
// Returns ErrNotComparable if component cannot be used as a key, and
// ErrAlreadyAttached if the component already carries hooks for the group.
func (reg *Registry) Attach(group Group, component Component, hooks *HookMap) error {
	if isFalsy(component) || !reflect.ValueOf(component).Comparable() {
		return fmt.Errorf("%w: %T", ErrNotComparable, component)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	table, ok := reg.groups[group]
	if !ok {
		table = make(map[Component]*HookMap)
		reg.groups[group] = table
	}
	if _, exists := table[component]; exists {
		return fmt.Errorf("%w: %T in %s", ErrAlreadyAttached, component, group)
	}
	table[component] = hooks
	return nil
}

// Lookup returns the hook map attached to component in group.
//
// Components implementing Hooked, Prefetcher or DeferredFetcher answer for
// themselves in the matching group; the table is consulted otherwise.
func (reg *Registry) Lookup(group Group, component Component) (*HookMap, bool) {
	if isFalsy(component) {
		return nil, false
	}
	if m, ok := selfHooks(group, component); ok {
		return m, true
	}
	if !reflect.ValueOf(component).Comparable() {
		return nil, false
	}

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	m, ok := reg.groups[group][component]
	return m, ok && m != nil
}

// Len returns the number of components registered in group.
func (reg *Registry) Len(group Group) int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.groups[group])
}

var (
	defaultMu       sync.RWMutex
	defaultRegistry = NewRegistry()
)

// SetDefault replaces the registry used by the package-level decorators and
// by engines created without WithRegistry.
func SetDefault(reg *Registry) {
	if reg == nil {
		panic("hxhook: SetDefault called with nil registry")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = reg
}

// Default returns the package-level registry.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}
