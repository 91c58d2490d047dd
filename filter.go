package hxhook

import "reflect"

// Entry pairs a component with the hook map it carries.
type Entry struct {
	Component Component
	Hooks     *HookMap
}

// HookedComponents returns the components in the default registry's
// GroupHooks that carry hooks. See Registry.HookedComponents.
func HookedComponents(components any) []Entry {
	return Default().HookedComponents(GroupHooks, components)
}

// HookedComponents filters components down to those carrying a hook map for
// group.
//
// components may be a single component or a slice or array of them. Falsy
// entries (nil, false, nil pointers and the like) and undecorated components
// are dropped. Input order is kept and duplicates are not removed.
func (reg *Registry) HookedComponents(group Group, components any) []Entry {
	var entries []Entry
	for _, c := range normalize(components) {
		if isFalsy(c) {
			continue
		}
		hooks, ok := reg.Lookup(group, c)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Component: c, Hooks: hooks})
	}
	return entries
}

// normalize turns a component or a list of components into a slice.
func normalize(components any) []Component {
	switch v := components.(type) {
	case nil:
		return nil
	case []Component:
		return v
	}

	rv := reflect.ValueOf(components)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []Component{components}
	}
	list := make([]Component, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list
}

// isFalsy reports whether c stands for an absent component.
func isFalsy(c Component) bool {
	if c == nil {
		return true
	}
	if b, ok := c.(bool); ok {
		return !b
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
