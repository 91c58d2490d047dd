package hxhook

import "context"

// Hooked is implemented by components that carry their own general hook map
// instead of being registered with Provide. Consulted for GroupHooks only.
//
// Example:
//
//	type ProfilePage struct {
//	    hooks *hxhook.HookMap
//	}
//
//	func (p *ProfilePage) Hooks() *hxhook.HookMap { return p.hooks }
//
// A nil map falls back to the registry.
type Hooked interface {
	Hooks() *HookMap
}

// Prefetcher is implemented by components that fetch their own eager data.
// It counts as a Prefetch decoration and takes precedence over one.
//
// Example:
//
//	func (p *ProfilePage) Prefetch(ctx context.Context, locals any) any {
//	    params := locals.(Params)
//	    return hxhook.HookFunc(p.load)(ctx, params)
//	}
//
// The return value follows the Hook contract.
type Prefetcher interface {
	Prefetch(ctx context.Context, locals any) any
}

// DeferredFetcher is implemented by components that fetch their own
// deferred data. It counts as a Defer decoration and takes precedence over
// one.
type DeferredFetcher interface {
	FetchDeferred(ctx context.Context, locals any) any
}

// selfHooks returns the hook map a component declares through its own
// methods for group.
func selfHooks(group Group, component Component) (*HookMap, bool) {
	switch group {
	case GroupHooks:
		if h, ok := component.(Hooked); ok {
			if m := h.Hooks(); m != nil {
				return m, true
			}
		}
	case GroupPrefetch:
		if p, ok := component.(Prefetcher); ok {
			return NewHookMap(Hooks{fetcherHook: p.Prefetch}), true
		}
	case GroupDefer:
		if d, ok := component.(DeferredFetcher); ok {
			return NewHookMap(Hooks{fetcherHook: d.FetchDeferred}), true
		}
	}
	return nil, false
}
