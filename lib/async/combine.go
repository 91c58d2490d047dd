package async

import "sync"

// All combines results with wait-for-all, fail-fast semantics.
//
// The returned future resolves with a []any holding each value in input order
// once every item has succeeded. It rejects with the first failure observed,
// without waiting for the remaining items; those keep running. Items already
// failed when All is called are checked in input order, so the earliest of
// them wins. With no items it resolves immediately with an empty slice.
func All(items ...Awaitable) *Future {
	out := New()
	if len(items) == 0 {
		out.Resolve([]any{})
		return out
	}

	items = append([]Awaitable(nil), items...)
	for i, item := range items {
		item = usable(item)
		items[i] = item
		select {
		case <-item.Done():
			if _, err := item.Result(); err != nil {
				out.Reject(err)
				return out
			}
		default:
		}
	}

	values := make([]any, len(items))
	var (
		mu      sync.Mutex
		pending = len(items)
	)
	for i, item := range items {
		go func(i int, item Awaitable) {
			<-item.Done()
			v, err := item.Result()
			if err != nil {
				out.Reject(err)
				return
			}
			mu.Lock()
			values[i] = v
			pending--
			last := pending == 0
			mu.Unlock()
			if last {
				out.Resolve(values)
			}
		}(i, item)
	}
	return out
}

// Step is one link of a Chain. It is only called once the previous link has
// succeeded.
type Step func() Awaitable

// Chain runs steps strictly one after another on a single goroutine.
//
// A step is started only after the previous one settled successfully. The
// first failure rejects the chain and no later step runs. The chain resolves
// with the last step's value, or nil when there are no steps.
func Chain(steps ...Step) *Future {
	out := New()
	if len(steps) == 0 {
		out.Resolve(nil)
		return out
	}
	go func() {
		var last any
		for _, step := range steps {
			item := runStep(step)
			<-item.Done()
			v, err := item.Result()
			if err != nil {
				out.Reject(err)
				return
			}
			last = v
		}
		out.Resolve(last)
	}()
	return out
}

func runStep(step Step) (item Awaitable) {
	defer func() {
		if r := recover(); r != nil {
			item = Rejected(Recovered(r))
		}
	}()
	return usable(step())
}
