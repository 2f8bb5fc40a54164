/*
File    : loxrun/internal/environment/environment.go

Package environment implements the lexical scope chain values are bound in.
It is grounded on go-mix/scope/scope.go's LookUp/Bind/Assign chain-walking
design, narrowed to the single binding kind Lox needs (no const/let
tracking — Lox's `var` has no such distinctions) and, critically, adapted
rather than copied: go-mix's Scope.Copy() hands a function its own
*value-copied* snapshot of the enclosing scope when it closes over it.
That breaks closure mutation (a counter closure must observe a shared,
mutable `i` across calls). Environment chains here are always shared by
pointer — a function captures the live *Environment at its declaration
site, never a copy — so environments form a DAG rooted at globals.
*/
package environment

import (
	"fmt"

	"github.com/loxrun/loxrun/internal/value"
)

// Environment is one scope node: a set of name-to-value bindings plus a
// link to the enclosing scope. The chain is singly linked toward globals;
// a captured closure environment may outlive the call frame that created
// it.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a scope whose enclosing link is the given parent, or a root
// (global) scope when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: parent,
	}
}

// Define creates or overwrites a binding in this scope only. Used both for
// `var` declarations and for binding call-time parameters; redeclaration
// is always allowed, so Define never errors.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks the scope chain outward looking for name, returning a runtime
// error if it is unbound anywhere in the chain.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign walks the scope chain outward and writes to the first scope that
// already binds name, returning a runtime error if no scope in the chain
// binds it. Unlike Define, Assign never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
