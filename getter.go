package hxhook

import "context"

// GetPrefetchedData invokes the Prefetch fetchers of components and combines
// their results with Trigger semantics.
func (e *Engine) GetPrefetchedData(ctx context.Context, components any, locals any) *Future {
	return e.trigger(ctx, GroupPrefetch, fetcherHook, components, locals)
}

// GetDeferredData invokes the Defer fetchers of components and combines
// their results with Trigger semantics.
func (e *Engine) GetDeferredData(ctx context.Context, components any, locals any) *Future {
	return e.trigger(ctx, GroupDefer, fetcherHook, components, locals)
}

// GetPrefetchedData runs Engine.GetPrefetchedData on the default engine.
func GetPrefetchedData(ctx context.Context, components any, locals any) *Future {
	return std.GetPrefetchedData(ctx, components, locals)
}

// GetDeferredData runs Engine.GetDeferredData on the default engine.
func GetDeferredData(ctx context.Context, components any, locals any) *Future {
	return std.GetDeferredData(ctx, components, locals)
}
