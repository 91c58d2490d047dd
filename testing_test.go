package hxhook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub(t *testing.T) {
	stub := NewStub()
	assert.Zero(t, stub.CallCount())
	assert.Nil(t, stub.Call(0))

	first := stub.Hook(context.Background(), "one")
	second := stub.Hook(context.Background(), "two")

	assert.Equal(t, 2, stub.CallCount())
	assert.Equal(t, "one", stub.Call(0))
	assert.Equal(t, "two", stub.Call(1))
	assert.Nil(t, stub.Call(-1))
	assert.Same(t, first, second, "every call shares one future")

	stub.Resolve("done")
	v, err := await(t, first.(*Future))
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestStubReject(t *testing.T) {
	stub := NewStub()
	want := errors.New("nope")
	stub.Reject(want)

	_, err := await(t, stub.Hook(context.Background(), nil).(*Future))
	assert.Same(t, want, err)
}

func TestTestResultHelpers(t *testing.T) {
	r := &TestResult{HTML: "<h1>Ada</h1><p>admin</p>", StatusCode: 200}

	assert.True(t, r.IsOK())
	assert.True(t, r.HTMLContains("Ada"))
	assert.True(t, r.HTMLContainsAll("Ada", "admin"))
	assert.False(t, r.HTMLContainsAll("Ada", "Grace"))
}
