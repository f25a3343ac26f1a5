/*
File    : gomix-lite/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexically-scoped name->value chain
// used both for ordinary block/function scoping and for closure capture.
// It is the Go-native home of github.com/akashmaji946/go-mix's scope
// package, generalized to this language's define/get/assign contract
// (spec.md §4.4) — notably *without* go-mix's Scope.Copy() snapshot
// method, which would break closure mutation (see DESIGN.md).
package environment

import (
	"fmt"

	"github.com/akashmaji946/gomix-lite/object"
)

// Environment is one link in the scope chain: a mapping of names to
// values plus a pointer to the enclosing scope. A nil Enclosing marks the
// global environment.
type Environment struct {
	values    map[string]object.Value
	Enclosing *Environment
}

// New creates a fresh environment enclosed by parent. Pass nil to create
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]object.Value),
		Enclosing: parent,
	}
}

// Define binds name to value in this frame only. At global scope,
// redefining an existing name is permitted and simply shadows the prior
// binding (spec.md §4.4: "in practice the scanner/parser treats var as
// permitting re-declaration at the top level"). Inside a non-global
// frame, redefining an existing name is a runtime error.
func (e *Environment) Define(name string, value object.Value) error {
	if _, exists := e.values[name]; exists && e.Enclosing != nil {
		return fmt.Errorf("Variable '%s' already defined.", name)
	}
	e.values[name] = value
	return nil
}

// Get resolves name by searching this frame, then each enclosing frame in
// turn. Finding the name bound to Uninitialized is itself a runtime
// error — reading an uninitialized variable is never allowed to produce a
// value (spec.md §3 invariant (d), §4.4).
func (e *Environment) Get(name string) (object.Value, error) {
	env := e
	for env != nil {
		if value, ok := env.values[name]; ok {
			if _, uninit := value.(*object.Uninitialized); uninit {
				return nil, fmt.Errorf("Variable '%s' has not been initialized or assigned to.", name)
			}
			return value, nil
		}
		env = env.Enclosing
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign mutates the first frame (searching outward from this one) that
// already binds name. It never creates a new binding; assigning to an
// undeclared name is a runtime error.
func (e *Environment) Assign(name string, value object.Value) error {
	env := e
	for env != nil {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
		env = env.Enclosing
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Global walks up the Enclosing chain to the root environment. Builtins
// are registered here once at interpreter start-up.
func (e *Environment) Global() *Environment {
	env := e
	for env.Enclosing != nil {
		env = env.Enclosing
	}
	return env
}
