package hxhook

import (
	"context"
	"sort"

	"github.com/pthm/hxhook/lib/async"
)

// Component is an opaque handle supplied by the caller, typically a pointer
// to a component value. hxhook never inspects it beyond looking up its hooks.
type Component = any

// Hook is a lifecycle action attached to a component under a name.
//
// A hook receives the resolved locals for its component and returns one of:
//   - an Awaitable (usually *Future) that settles later
//   - nil, treated as immediate success
//   - an error, treated as a synchronous failure
//   - any other value, treated as immediate success with a warning logged
//
// A panic inside the hook is also a synchronous failure. Synchronous failures
// never escape Trigger or Waterfall; they reject the returned future.
type Hook func(ctx context.Context, locals any) any

// HookFunc adapts a blocking function into a Hook that runs on its own
// goroutine and settles with fn's outcome.
//
//	hxhook.HookFunc(func(ctx context.Context, locals any) (any, error) {
//	    return store.Load(ctx, locals.(Params).ID)
//	})
func HookFunc(fn func(ctx context.Context, locals any) (any, error)) Hook {
	return func(ctx context.Context, locals any) any {
		return async.Go(ctx, func(ctx context.Context) (any, error) {
			return fn(ctx, locals)
		})
	}
}

// Hooks is the literal form of a hook map, used to build a HookMap.
type Hooks map[string]Hook

// HookMap is the immutable set of named hooks attached to one component.
//
// A HookMap may also declare nested components. Trigger and Waterfall recurse
// into them with the same hook name and locals, so a layout can carry the
// data requirements of the components it composes.
type HookMap struct {
	hooks  map[string]Hook
	nested []Component
}

// NewHookMap builds a HookMap from hooks. Nil hooks are dropped; the input
// map and nested list are copied.
//
//	hooks := hxhook.NewHookMap(hxhook.Hooks{
//	    "fetch": fetchUser,
//	    "done":  trackView,
//	}, sidebar, footer)
func NewHookMap(hooks Hooks, nested ...Component) *HookMap {
	m := &HookMap{hooks: make(map[string]Hook, len(hooks))}
	for name, h := range hooks {
		if h != nil {
			m.hooks[name] = h
		}
	}
	if len(nested) > 0 {
		m.nested = append([]Component(nil), nested...)
	}
	return m
}

// Lookup returns the hook registered under name.
func (m *HookMap) Lookup(name string) (Hook, bool) {
	if m == nil {
		return nil, false
	}
	h, ok := m.hooks[name]
	return h, ok
}

// Names returns the registered hook names in sorted order.
func (m *HookMap) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.hooks))
	for name := range m.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Nested returns a copy of the nested component list.
func (m *HookMap) Nested() []Component {
	if m == nil || len(m.nested) == 0 {
		return nil
	}
	return append([]Component(nil), m.nested...)
}

// Len returns the number of hooks.
func (m *HookMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.hooks)
}

// Group selects which set of hooks a component carries. A component may be
// decorated once per group.
type Group int

const (
	// GroupHooks holds general named hook maps attached with Provide.
	GroupHooks Group = iota
	// GroupPrefetch holds fetchers that must complete before rendering.
	GroupPrefetch
	// GroupDefer holds fetchers that may complete after the first render.
	GroupDefer
)

// fetcherHook is the name a Prefetch or Defer fetcher is stored under.
const fetcherHook = "fetch"

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupHooks:
		return "hooks"
	case GroupPrefetch:
		return "fetchers"
	case GroupDefer:
		return "deferredFetchers"
	default:
		return "unknown"
	}
}
