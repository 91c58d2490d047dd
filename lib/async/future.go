// Package async provides the single-assignment asynchronous result used by
// hook invocation, and the combinators that aggregate many of them.
package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrRejected is the failure recorded when a future is rejected without an
// error value.
var ErrRejected = errors.New("hxhook: rejected")

// ErrZeroFuture is the failure recorded for a Future that was not created
// with New and so can never settle.
var ErrZeroFuture = errors.New("hxhook: future not created with New")

// Awaitable is anything that settles once with a value or an error.
//
// Result must only be read after Done is closed.
type Awaitable interface {
	Done() <-chan struct{}
	Result() (any, error)
}

// Future is a settle-once asynchronous result.
//
// The first call to Resolve or Reject wins; later calls are ignored and
// report false. The zero value is not usable; create one with New.
type Future struct {
	done  chan struct{}
	once  sync.Once
	value any
	err   error
}

// New creates a pending future.
func New() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a future already settled with v.
func Resolved(v any) *Future {
	f := New()
	f.Resolve(v)
	return f
}

// Rejected returns a future already settled with err.
func Rejected(err error) *Future {
	f := New()
	f.Reject(err)
	return f
}

// Resolve settles the future successfully. Reports whether this call settled it.
func (f *Future) Resolve(v any) bool {
	return f.settle(v, nil)
}

// Reject settles the future with err. A nil err is recorded as ErrRejected so
// a rejection is never mistaken for success.
func (f *Future) Reject(err error) bool {
	if err == nil {
		err = ErrRejected
	}
	return f.settle(nil, err)
}

func (f *Future) settle(v any, err error) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

// Done returns a channel closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has settled.
func (f *Future) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the settled value and error. Before settlement it returns
// nil, nil.
func (f *Future) Result() (any, error) {
	if !f.Settled() {
		return nil, nil
	}
	return f.value, f.err
}

// Await blocks until the future settles or ctx is done. Giving up on ctx does
// not affect the future itself.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Go runs fn on its own goroutine and returns a future for its outcome. A
// panic inside fn rejects the future.
func Go(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	f := New()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(Recovered(r))
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// From adapts an arbitrary Awaitable into a *Future. A nil Awaitable resolves
// with nil and a zero Future rejects with ErrZeroFuture.
func From(a Awaitable) *Future {
	a = usable(a)
	if f, ok := a.(*Future); ok {
		return f
	}
	f := New()
	go func() {
		<-a.Done()
		v, err := a.Result()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// usable replaces awaitables that could never settle with settled ones.
func usable(a Awaitable) Awaitable {
	if a == nil {
		return Resolved(nil)
	}
	if f, ok := a.(*Future); ok {
		if f == nil {
			return Resolved(nil)
		}
		if f.done == nil {
			return Rejected(ErrZeroFuture)
		}
	}
	return a
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("hxhook: hook panicked: %v", e.Value)
}

// Recovered converts a recovered panic value into an error. Error values are
// returned unchanged.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
