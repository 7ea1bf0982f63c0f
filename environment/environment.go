// Package environment implements the scope chain that backs variable
// lookup, assignment, and closure capture.
package environment

import "github.com/akashmaji946/orin/value"

// Environment is one scope node: a name-to-value mapping plus an
// optional pointer to its enclosing scope. Environments are shared by
// reference — the evaluator's current scope, any closures that captured
// it, and deeper scopes that point to it as their enclosing all see the
// same mutations through the same *Environment, exactly as Go's pointer
// semantics already guarantee without any extra bookkeeping.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a fresh scope enclosed by parent. parent may be nil for
// the global scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: parent}
}

// Define unconditionally inserts name into this scope, overwriting any
// existing binding of the same name in this scope only. It never touches
// an enclosing scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name in this scope, recursing into the enclosing chain if
// not found here. The boolean result is false if name is bound nowhere
// in the chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign overwrites the nearest existing binding of name in the chain,
// starting at this scope and walking outward. It never creates a new
// binding; the boolean result is false if name is bound nowhere in the
// chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return false
}
