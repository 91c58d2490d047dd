package hxhook

import (
	"context"

	"github.com/pthm/hxhook/lib/async"
)

// Trigger invokes the hook called name on every component that has one and
// combines the results.
//
// components is a single component or a slice of them; falsy entries and
// components without the hook are skipped. locals is passed to each hook,
// or resolved per component when it is a LocalsFunc.
//
// Hooks are started in source order without waiting on each other. The
// returned future resolves with a []any of their results, in the same order,
// once all have succeeded. It rejects with the first failure as soon as it
// happens; hooks already started keep running. With no eligible hooks it
// resolves immediately with an empty slice.
//
// Trigger never panics: hooks that panic or return an error reject the
// returned future instead.
func (e *Engine) Trigger(ctx context.Context, name string, components any, locals any) *Future {
	return e.trigger(ctx, GroupHooks, name, components, locals)
}

func (e *Engine) trigger(ctx context.Context, group Group, name string, components any, locals any) (result *Future) {
	defer func() {
		if r := recover(); r != nil {
			result = async.Rejected(async.Recovered(r))
		}
	}()

	calls := e.batch(group, name, components)
	e.logger.Debug().Str("hook", name).Stringer("group", group).Int("hooks", len(calls)).Msg("trigger")

	pending := make([]Awaitable, len(calls))
	for i, c := range calls {
		pending[i] = e.invoke(ctx, name, c, locals)
	}
	return async.All(pending...)
}

// Trigger runs Engine.Trigger on the default engine.
func Trigger(ctx context.Context, name string, components any, locals any) *Future {
	return std.Trigger(ctx, name, components, locals)
}
