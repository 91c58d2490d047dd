// Package hxhook attaches named lifecycle hooks, such as data fetchers, to UI
// components and invokes them across lists of components, combining the
// asynchronous results into a single future.
//
// # Attaching Hooks
//
// Hooks are attached once, at definition time, with decorators that record
// the component in a Registry keyed by identity:
//
//	page := hxhook.With(&ProfilePage{},
//	    hxhook.Prefetch(fetchProfile),
//	    hxhook.Defer(fetchActivity),
//	    hxhook.Provide(hxhook.NewHookMap(hxhook.Hooks{
//	        "track": trackView,
//	    })),
//	)
//
// Components may instead describe themselves by implementing Hooked,
// Prefetcher or DeferredFetcher.
//
// A Hook receives the locals for its component and returns a *Future (or any
// Awaitable) that settles later. Returning nil is immediate success; returning
// an error or panicking is a failure. HookFunc adapts a blocking function.
//
// # Invoking Hooks
//
// Trigger starts every matching hook in source order without waiting, then
// resolves once all have succeeded or rejects on the first failure:
//
//	results, err := hxhook.Trigger(ctx, "track", []hxhook.Component{page, nav}, params).Await(ctx)
//
// Waterfall runs them one at a time and stops at the first failure.
// GetPrefetchedData and GetDeferredData run the Prefetch and Defer fetchers
// with Trigger semantics.
//
// Locals may be a plain value shared by every hook or a LocalsFunc computing
// the argument per component. Nil, false and nil-pointer entries in a list
// are skipped, as are components without the requested hook; neither is an
// error. A HookMap may list nested components, which are visited with the
// same hook name and locals.
//
// # Rendering and Dehydration
//
// Prerender and Serve fetch prefetch data before rendering templ components.
// Dehydrate packs fetched results into a signed or encrypted token for the
// client, and Rehydrate reverses it.
package hxhook
