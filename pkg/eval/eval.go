// Package eval reduces named expressions to runtime values.
package eval

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/vito/letlang/pkg/env"
	"github.com/vito/letlang/pkg/named"
)

// Evaluate reduces expr to a value in an empty environment.
//
// An unbound variable yields an *env.UnboundError and an operand of the wrong
// variant yields a *RuntimeError. Both indicate the tree was not closed or not
// well-typed.
func Evaluate(ctx context.Context, expr named.Expr) (Value, error) {
	return Eval(ctx, NewEnv(), expr)
}

// MustEvaluate is like Evaluate but panics on error.
func MustEvaluate(ctx context.Context, expr named.Expr) Value {
	val, err := Evaluate(ctx, expr)
	if err != nil {
		panic(err)
	}
	return val
}

// Eval reduces expr in the given environment.
func Eval(ctx context.Context, env Env, expr named.Expr) (Value, error) {
	switch e := expr.(type) {
	case named.Num:
		return Int{e.Value}, nil

	case named.Var:
		return lookup(env, e.Name)

	case named.Add:
		l, r, err := evalInts(ctx, env, "add", e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Int{l + r}, nil

	case named.Sub:
		l, r, err := evalInts(ctx, env, "sub", e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Int{l - r}, nil

	case named.IsZero:
		i, err := evalInt(ctx, env, "iszero", e.Operand)
		if err != nil {
			return nil, err
		}
		return Bool{i == 0}, nil

	case named.IfThenElse:
		cond, err := Eval(ctx, env, e.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Bool)
		if !ok {
			return nil, &RuntimeError{Construct: "if", Expected: "Bool", Got: cond}
		}
		if b.Value {
			return Eval(ctx, env, e.Then)
		}
		return Eval(ctx, env, e.Else)

	case named.LetIn:
		bound, err := Eval(ctx, env, e.Bound)
		if err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "binding", "name", e.Name, "value", bound)
		return Eval(ctx, env.Extend(e.Name, bound), e.Body)

	case named.Fun:
		slog.DebugContext(ctx, "creating closure", "param", e.Param, "captured", env.Len())
		return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil

	case named.App:
		fn, err := Eval(ctx, env, e.Fun)
		if err != nil {
			return nil, err
		}
		closure, ok := fn.(*Closure)
		if !ok {
			return nil, &RuntimeError{Construct: "application", Expected: "Closure", Got: fn}
		}
		arg, err := Eval(ctx, env, e.Arg)
		if err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "applying closure", "param", closure.Param, "arg", arg)
		return Eval(ctx, closure.Env.Extend(closure.Param, arg), closure.Body)

	default:
		return nil, errors.Errorf("expression of type %T is unhandled", expr)
	}
}

func lookup(scope Env, name string) (Value, error) {
	val, found := scope.Lookup(name)
	if !found {
		return nil, &env.UnboundError{Name: name}
	}
	return val, nil
}

func evalInt(ctx context.Context, env Env, construct string, expr named.Expr) (int, error) {
	val, err := Eval(ctx, env, expr)
	if err != nil {
		return 0, err
	}
	i, ok := val.(Int)
	if !ok {
		return 0, &RuntimeError{Construct: construct, Expected: "Int", Got: val}
	}
	return i.Value, nil
}

// evalInts evaluates both operands left to right.
func evalInts(ctx context.Context, env Env, construct string, left, right named.Expr) (int, int, error) {
	l, err := evalInt(ctx, env, construct, left)
	if err != nil {
		return 0, 0, err
	}
	r, err := evalInt(ctx, env, construct, right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
