package hxhook

import (
	"context"

	"github.com/pthm/hxhook/lib/async"
)

// invoke resolves locals for c and runs its hook, converting every outcome
// into a future. Panics in the locals resolver or the hook reject the future.
func (e *Engine) invoke(ctx context.Context, name string, c call, locals any) (result *Future) {
	defer func() {
		if r := recover(); r != nil {
			result = async.Rejected(async.Recovered(r))
		}
	}()

	arg := ResolveLocals(locals, c.component)
	return e.settle(name, c.component, c.hook(ctx, arg))
}

// settle maps a hook's return value onto a future.
func (e *Engine) settle(name string, component Component, out any) *Future {
	switch v := out.(type) {
	case nil:
		return async.Resolved(nil)
	case *Future:
		return async.From(v)
	case Awaitable:
		if isFalsy(v) {
			return async.Resolved(nil)
		}
		return async.From(v)
	case error:
		// A typed nil error is a hook that meant to report no failure.
		if isFalsy(v) {
			return async.Resolved(nil)
		}
		return async.Rejected(v)
	default:
		e.logger.Warn().
			Str("hook", name).
			Str("component", typeName(component)).
			Str("result", typeName(out)).
			Msg("hook returned a non-asynchronous result")
		return async.Resolved(out)
	}
}
