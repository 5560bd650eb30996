package interp

import "github.com/dolthub/swiss"

// binding is a declared variable slot. A nil Value with !Initialized models
// spec.md §3's "declared but uninitialized" state, distinct from an absent
// binding: `var a;` declares `a` but reading it before assignment is a
// runtime error.
type binding struct {
	value       Value
	initialized bool
}

// Environment is a single scope frame: a mapping from identifier to binding,
// plus an optional link to an enclosing scope. Environments form a chain
// rooted at the globals scope; closures retain a reference to the
// environment live at their declaration and that chain points strictly
// outward, so it can never cycle (spec.md §3).
//
// Backed by swiss.Map for the same reason the resolver's side table is: a
// small, single-threaded, frequently-read table, the niche swiss.Map fills
// in the teacher's own runtime Map type.
type Environment struct {
	values    *swiss.Map[string, *binding]
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope. Used
// once, for the globals environment (spec.md §3 invariant I4).
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, *binding](8)}
}

// NewChildEnvironment creates an environment enclosed by parent, for block
// entry or a function call (spec.md §4.3).
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, *binding](4), enclosing: parent}
}

// Define creates or overwrites a binding for name in this environment. A
// value of Nil is not the same as "uninitialized" — callers that mean
// "declared but not yet initialized" must use DefineUninitialized.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, &binding{value: value, initialized: true})
}

// DefineUninitialized declares name without a value, e.g. for `var a;`.
func (e *Environment) DefineUninitialized(name string) {
	e.values.Put(name, &binding{initialized: false})
}

// Get reads name from this environment only (no chain walk), returning
// (value, declaredButUninitialized, found).
func (e *Environment) Get(name string) (Value, bool, bool) {
	b, ok := e.values.Get(name)
	if !ok {
		return nil, false, false
	}
	return b.value, !b.initialized, true
}

// GetAt reads name after climbing distance enclosing links, the resolver's
// scope-distance contract (spec.md §4.3).
func (e *Environment) GetAt(distance int, name string) (Value, bool, bool) {
	return e.ancestor(distance).Get(name)
}

// Assign writes to the first environment in the chain (starting at e) that
// already has a binding for name. Returns false if no such binding exists.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if b, ok := env.values.Get(name); ok {
			b.value = value
			b.initialized = true
			return true
		}
	}
	return false
}

// AssignAt writes to the environment distance hops up the chain, failing if
// that environment has no binding for name (it always should, per the
// resolver's invariant I1).
func (e *Environment) AssignAt(distance int, name string, value Value) bool {
	env := e.ancestor(distance)
	if b, ok := env.values.Get(name); ok {
		b.value = value
		b.initialized = true
		return true
	}
	return false
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
