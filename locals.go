package hxhook

// LocalsFunc computes the locals for one component. It runs once per
// eligible component, right before that component's hook.
type LocalsFunc func(c Component) any

// ResolveLocals returns the argument a component's hook receives.
//
// A LocalsFunc (or plain func(Component) any) is called with the component;
// any other value is shared unchanged by every hook.
func ResolveLocals(locals any, c Component) any {
	switch fn := locals.(type) {
	case LocalsFunc:
		if fn == nil {
			return nil
		}
		return fn(c)
	case func(Component) any:
		if fn == nil {
			return nil
		}
		return fn(c)
	default:
		return locals
	}
}
