package hxhook

import "github.com/pthm/hxhook/lib/async"

// Future is an alias for async.Future for convenience.
type Future = async.Future

// Awaitable is an alias for async.Awaitable. Hooks return one to signal
// asynchronous completion.
type Awaitable = async.Awaitable

// NewFuture creates a pending future for a hook to settle later.
func NewFuture() *Future {
	return async.New()
}

// Resolved returns a future already settled with v.
func Resolved(v any) *Future {
	return async.Resolved(v)
}

// Rejected returns a future already settled with err.
func Rejected(err error) *Future {
	return async.Rejected(err)
}
