package eval

import (
	"fmt"
	"strconv"

	"github.com/vito/letlang/pkg/env"
	"github.com/vito/letlang/pkg/named"
)

// Value represents a runtime value
type Value interface {
	String() string
	isValue()
}

type Int struct {
	Value int
}

type Bool struct {
	Value bool
}

// Closure is a function value together with the environment it was created
// in. The environment is persistent, so later bindings in the defining scope
// cannot reach it.
type Closure struct {
	Param string
	Body  named.Expr
	Env   Env
}

// Env binds names to runtime values
type Env = env.Map[Value]

// NewEnv returns an empty evaluation environment
func NewEnv() Env {
	return env.NewMap[Value]()
}

func (Int) isValue()      {}
func (Bool) isValue()     {}
func (*Closure) isValue() {}

func (i Int) String() string  { return strconv.Itoa(i.Value) }
func (b Bool) String() string { return strconv.FormatBool(b.Value) }

func (c *Closure) String() string {
	return fmt.Sprintf("(fun %s -> %s)", c.Param, c.Body)
}

// kind names the variant of a value for error messages
func kind(v Value) string {
	switch v.(type) {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case *Closure:
		return "Closure"
	default:
		return fmt.Sprintf("%T", v)
	}
}
