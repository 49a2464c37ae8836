package object

// Environment binds identifiers to the objects they evaluate to.
//
// An Environment forms a chain via outer: resolving a name first checks
// the local store, then walks outward until it finds a binding or runs
// out of enclosing environments. This is how function calls get their
// own local scope while still seeing variables from where they were
// defined (lexical scoping, not dynamic).
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates an empty, top-level Environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates an Environment nested inside outer.
//
// Lookups that miss locally fall through to outer, so bindings made in
// the new environment shadow but never mutate the enclosing one.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get resolves name, checking outer environments if it isn't bound locally.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment, shadowing any outer binding
// of the same name, and returns val.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
