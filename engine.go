package hxhook

import (
	"os"
	"reflect"

	"github.com/rs/zerolog"
)

// Engine invokes named hooks across components.
//
// An Engine holds no per-call state; one value may serve concurrent calls.
type Engine struct {
	registry *Registry
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the registry hooks are looked up in. Without it the
// engine follows the package default, including later SetDefault calls.
func WithRegistry(reg *Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithLogger sets the logger used for diagnostics such as hooks returning
// non-asynchronous results.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. By default it logs warnings to stderr.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Str("pkg", "hxhook").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine reads hooks from.
func (e *Engine) Registry() *Registry {
	if e.registry != nil {
		return e.registry
	}
	return Default()
}

// call is one eligible (component, hook) pair of an invocation batch.
type call struct {
	component Component
	hook      Hook
}

// batch collects the hooks named name across components, in source order,
// descending into nested component lists after each parent's own hook.
// It is rebuilt on every invocation.
func (e *Engine) batch(group Group, name string, components any) []call {
	var calls []call
	e.collect(e.Registry(), group, name, components, nil, &calls)
	return calls
}

// maxNesting bounds how deep nested component lists are followed.
const maxNesting = 32

func (e *Engine) collect(reg *Registry, group Group, name string, components any, path []Entry, calls *[]call) {
	for _, entry := range reg.HookedComponents(group, components) {
		if onPath(path, entry) {
			e.logger.Warn().
				Str("hook", name).
				Str("component", typeName(entry.Component)).
				Msg("skipping nested component that contains itself")
			continue
		}
		if hook, ok := entry.Hooks.Lookup(name); ok {
			*calls = append(*calls, call{component: entry.Component, hook: hook})
		}
		nested := entry.Hooks.Nested()
		if len(nested) == 0 {
			continue
		}
		if len(path) >= maxNesting {
			e.logger.Warn().
				Str("hook", name).
				Str("component", typeName(entry.Component)).
				Int("depth", len(path)).
				Msg("nested components too deep")
			continue
		}
		e.collect(reg, group, name, nested, append(path[:len(path):len(path)], entry), calls)
	}
}

// onPath reports whether entry already appears on the nesting path, either as
// the same component or as the same hook map.
func onPath(path []Entry, entry Entry) bool {
	canCompare := reflect.ValueOf(entry.Component).Comparable()
	for _, p := range path {
		if p.Hooks == entry.Hooks {
			return true
		}
		if canCompare && reflect.ValueOf(p.Component).Comparable() && p.Component == entry.Component {
			return true
		}
	}
	return false
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

var std = NewEngine()
