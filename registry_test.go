package hxhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAttachAndLookup(t *testing.T) {
	reg := NewRegistry()
	w := &widget{name: "a"}
	hooks := NewHookMap(Hooks{"fetch": value(1)})

	require.NoError(t, reg.Attach(GroupHooks, w, hooks))

	got, ok := reg.Lookup(GroupHooks, w)
	require.True(t, ok)
	assert.Same(t, hooks, got)
	assert.Equal(t, 1, reg.Len(GroupHooks))

	_, ok = reg.Lookup(GroupPrefetch, w)
	assert.False(t, ok, "groups are independent")

	_, ok = reg.Lookup(GroupHooks, &widget{name: "a"})
	assert.False(t, ok, "lookup is by identity")
}

func TestRegistryAttachTwice(t *testing.T) {
	reg := NewRegistry()
	w := &widget{}

	require.NoError(t, reg.Attach(GroupPrefetch, w, NewHookMap(nil)))
	require.NoError(t, reg.Attach(GroupDefer, w, NewHookMap(nil)))

	err := reg.Attach(GroupPrefetch, w, NewHookMap(nil))
	assert.ErrorIs(t, err, ErrAlreadyAttached)
}

func TestRegistryRejectsUnusableKeys(t *testing.T) {
	reg := NewRegistry()

	assert.ErrorIs(t, reg.Attach(GroupHooks, []string{"a"}, NewHookMap(nil)), ErrNotComparable)
	assert.ErrorIs(t, reg.Attach(GroupHooks, nil, NewHookMap(nil)), ErrNotComparable)

	_, ok := reg.Lookup(GroupHooks, map[string]int{})
	assert.False(t, ok)
}

type selfHooked struct {
	hooks *HookMap
}

func (s *selfHooked) Hooks() *HookMap { return s.hooks }

func TestRegistryLookupHooked(t *testing.T) {
	reg := NewRegistry()
	own := NewHookMap(Hooks{"fetch": value("own")})
	s := &selfHooked{hooks: own}

	got, ok := reg.Lookup(GroupHooks, s)
	require.True(t, ok)
	assert.Same(t, own, got)

	empty := &selfHooked{}
	registered := NewHookMap(Hooks{"fetch": value("registered")})
	require.NoError(t, reg.Attach(GroupHooks, empty, registered))

	got, ok = reg.Lookup(GroupHooks, empty)
	require.True(t, ok)
	assert.Same(t, registered, got, "nil Hooks falls back to the registry")
}

func TestDecorators(t *testing.T) {
	reg := NewRegistry()
	w := With(&widget{name: "page"},
		reg.Provide(NewHookMap(Hooks{"track": value(nil)})),
		reg.Prefetch(value("eager")),
		reg.Defer(value("late")),
	)

	assert.Equal(t, "page", w.name)
	for _, g := range []Group{GroupHooks, GroupPrefetch, GroupDefer} {
		_, ok := reg.Lookup(g, w)
		assert.True(t, ok, g.String())
	}

	assert.PanicsWithValue(t, "hxhook: hooks already attached: *hxhook.widget in fetchers", func() {
		reg.Prefetch(value("again"))(w)
	})
}

func TestDefaultRegistry(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	reg := NewRegistry()
	SetDefault(reg)
	assert.Same(t, reg, Default())

	w := With(&widget{}, Prefetch(value(1)), Defer(value(2)), Provide(NewHookMap(Hooks{"x": value(3)})))
	assert.Equal(t, 1, reg.Len(GroupPrefetch))
	assert.Equal(t, 1, reg.Len(GroupDefer))
	assert.Len(t, HookedComponents(w), 1)

	assert.Panics(t, func() { SetDefault(nil) })
}

func TestHookMap(t *testing.T) {
	child := &widget{name: "child"}
	src := Hooks{"b": value(1), "a": value(2), "nil": nil}
	m := NewHookMap(src, child)

	src["c"] = value(3)
	assert.Equal(t, []string{"a", "b"}, m.Names(), "input map is copied and nil hooks dropped")
	assert.Equal(t, 2, m.Len())

	_, ok := m.Lookup("c")
	assert.False(t, ok)

	nested := m.Nested()
	require.Len(t, nested, 1)
	nested[0] = nil
	assert.Same(t, child, m.Nested()[0], "nested list is copied")

	var empty *HookMap
	_, ok = empty.Lookup("a")
	assert.False(t, ok)
	assert.Nil(t, empty.Names())
	assert.Nil(t, empty.Nested())
	assert.Zero(t, empty.Len())
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "hooks", GroupHooks.String())
	assert.Equal(t, "fetchers", GroupPrefetch.String())
	assert.Equal(t, "deferredFetchers", GroupDefer.String())
	assert.Equal(t, "unknown", Group(99).String())
}
