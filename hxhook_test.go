package hxhook

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// widget is a plain component handle used across tests.
type widget struct {
	name string
}

func newTestEngine(reg *Registry) *Engine {
	return NewEngine(WithRegistry(reg), WithLogger(zerolog.Nop()))
}

// newLoggedEngine returns an engine whose warnings are captured in buf.
func newLoggedEngine(reg *Registry) (*Engine, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewEngine(WithRegistry(reg), WithLogger(zerolog.New(&buf))), &buf
}

func await(t *testing.T, f *Future) (any, error) {
	t.Helper()
	if f == nil {
		t.Fatal("expected a future, got nil")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	select {
	case <-f.Done():
	case <-ctx.Done():
		t.Fatal("future did not settle")
	}
	return f.Await(ctx)
}

func value(v any) Hook {
	return func(ctx context.Context, locals any) any {
		return Resolved(v)
	}
}
