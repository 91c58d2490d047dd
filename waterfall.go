package hxhook

import (
	"context"

	"github.com/pthm/hxhook/lib/async"
)

// Waterfall invokes the hook called name on every component that has one,
// strictly one after another.
//
// Component selection and locals work as in Trigger. Each hook starts only
// after the previous one succeeded; locals are resolved right before each
// call. The first failure rejects the returned future and no later hook is
// invoked. On success the future resolves with the last hook's result, or nil
// when no hook was eligible.
func (e *Engine) Waterfall(ctx context.Context, name string, components any, locals any) (result *Future) {
	defer func() {
		if r := recover(); r != nil {
			result = async.Rejected(async.Recovered(r))
		}
	}()

	calls := e.batch(GroupHooks, name, components)
	e.logger.Debug().Str("hook", name).Int("hooks", len(calls)).Msg("waterfall")

	steps := make([]async.Step, len(calls))
	for i, c := range calls {
		c := c
		steps[i] = func() Awaitable {
			return e.invoke(ctx, name, c, locals)
		}
	}
	return async.Chain(steps...)
}

// Waterfall runs Engine.Waterfall on the default engine.
func Waterfall(ctx context.Context, name string, components any, locals any) *Future {
	return std.Waterfall(ctx, name, components, locals)
}
