package hm

import "github.com/vito/letlang/pkg/env"

// Env represents a type environment
type Env interface {
	TypeOf(name string) (Type, bool)
	Add(name string, t Type) Env
	Names() []string
}

// SimpleEnv is a scoped type environment. Add never mutates the receiver, so
// a binding is only visible to the subtree it was added for.
type SimpleEnv struct {
	types env.Map[Type]
}

var _ Env = SimpleEnv{}

// NewSimpleEnv creates a new SimpleEnv
func NewSimpleEnv() SimpleEnv {
	return SimpleEnv{types: env.NewMap[Type]()}
}

// TypeOf returns the type bound to a name
func (e SimpleEnv) TypeOf(name string) (Type, bool) {
	return e.types.Lookup(name)
}

// Add returns an environment extended with a binding
func (e SimpleEnv) Add(name string, t Type) Env {
	return SimpleEnv{types: e.types.Extend(name, t)}
}

// Names returns the bound names, innermost first
func (e SimpleEnv) Names() []string {
	return e.types.Names()
}
