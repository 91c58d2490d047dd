package hxhook

// Decorator attaches hooks to a component and returns the component unchanged.
type Decorator func(Component) Component

// Provide returns a decorator attaching hooks to a component in the default
// registry under GroupHooks.
//
//	page := hxhook.With(&ProfilePage{}, hxhook.Provide(hxhook.NewHookMap(hxhook.Hooks{
//	    "fetch": fetchProfile,
//	})))
//
// Decorating the same component twice in one group panics.
func Provide(hooks *HookMap) Decorator {
	return Default().Provide(hooks)
}

// Prefetch returns a decorator attaching a fetcher that GetPrefetchedData
// invokes. Use it for data the first render cannot do without.
func Prefetch(fetcher Hook) Decorator {
	return Default().Prefetch(fetcher)
}

// Defer returns a decorator attaching a fetcher that GetDeferredData invokes.
// Use it for data that may arrive after the first render.
func Defer(fetcher Hook) Decorator {
	return Default().Defer(fetcher)
}

// Provide is like the package-level Provide but attaches to reg.
func (reg *Registry) Provide(hooks *HookMap) Decorator {
	return reg.decorator(GroupHooks, hooks)
}

// Prefetch is like the package-level Prefetch but attaches to reg.
func (reg *Registry) Prefetch(fetcher Hook) Decorator {
	return reg.decorator(GroupPrefetch, NewHookMap(Hooks{fetcherHook: fetcher}))
}

// Defer is like the package-level Defer but attaches to reg.
func (reg *Registry) Defer(fetcher Hook) Decorator {
	return reg.decorator(GroupDefer, NewHookMap(Hooks{fetcherHook: fetcher}))
}

func (reg *Registry) decorator(group Group, hooks *HookMap) Decorator {
	return func(c Component) Component {
		if err := reg.Attach(group, c, hooks); err != nil {
			panic(err.Error())
		}
		return c
	}
}

// With applies decorators to c in order and returns c with its static type
// intact.
func With[C any](c C, decorators ...Decorator) C {
	for _, d := range decorators {
		d(c)
	}
	return c
}
