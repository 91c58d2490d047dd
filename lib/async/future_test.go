package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func await(t *testing.T, f *Future) (any, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	select {
	case <-f.Done():
	case <-ctx.Done():
		t.Fatal("future did not settle")
	}
	return f.Await(ctx)
}

func TestFutureSettlesOnce(t *testing.T) {
	f := New()
	assert.False(t, f.Settled())

	assert.True(t, f.Resolve("first"))
	assert.False(t, f.Resolve("second"))
	assert.False(t, f.Reject(errors.New("late")))

	v, err := await(t, f)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestFutureResultBeforeSettle(t *testing.T) {
	v, err := New().Result()
	assert.Nil(t, v)
	assert.NoError(t, err)
}

func TestRejectWithNilError(t *testing.T) {
	_, err := await(t, Rejected(nil))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestAwaitContextCancelled(t *testing.T) {
	f := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, f.Settled(), "giving up must not settle the future")
}

func TestGo(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := await(t, Go(context.Background(), func(ctx context.Context) (any, error) {
			return 42, nil
		}))
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("error", func(t *testing.T) {
		want := errors.New("boom")
		_, err := await(t, Go(context.Background(), func(ctx context.Context) (any, error) {
			return nil, want
		}))
		assert.Same(t, want, err)
	})

	t.Run("panic", func(t *testing.T) {
		_, err := await(t, Go(context.Background(), func(ctx context.Context) (any, error) {
			panic("bad")
		}))
		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "bad", pe.Value)
	})
}

type manual struct {
	done  chan struct{}
	value any
	err   error
}

func (m *manual) Done() <-chan struct{} { return m.done }
func (m *manual) Result() (any, error) { return m.value, m.err }

func TestFrom(t *testing.T) {
	f := New()
	assert.Same(t, f, From(f))

	m := &manual{done: make(chan struct{}), value: "ok"}
	adapted := From(m)
	assert.False(t, adapted.Settled())

	close(m.done)
	v, err := await(t, adapted)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestRecovered(t *testing.T) {
	want := errors.New("as error")
	assert.Same(t, want, Recovered(want))

	err := Recovered(7)
	assert.EqualError(t, err, "hxhook: hook panicked: 7")
}
