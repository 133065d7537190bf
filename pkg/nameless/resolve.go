package nameless

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/vito/letlang/pkg/env"
	"github.com/vito/letlang/pkg/named"
)

// Scope is the stack of enclosing binder names.
type Scope = env.Stack[string]

// ToNameless replaces every variable name in expr with its de Bruijn index
// and drops binder names. A variable with no enclosing binder yields an
// *env.UnboundError.
func ToNameless(ctx context.Context, expr named.Expr) (Expr, error) {
	return Resolve(ctx, env.NewStack[string](), expr)
}

// MustToNameless is like ToNameless but panics on error.
func MustToNameless(ctx context.Context, expr named.Expr) Expr {
	out, err := ToNameless(ctx, expr)
	if err != nil {
		panic(err)
	}
	return out
}

// Resolve converts expr under the given scope. Scopes are values, so binders
// pushed while resolving one subtree are never seen by its siblings.
func Resolve(ctx context.Context, scope Scope, expr named.Expr) (Expr, error) {
	switch e := expr.(type) {
	case named.Num:
		return Num{e.Value}, nil

	case named.Var:
		i, found := scope.IndexOf(e.Name)
		if !found {
			return nil, &env.UnboundError{Name: e.Name}
		}
		slog.DebugContext(ctx, "resolved variable", "name", e.Name, "index", i)
		return Var{i}, nil

	case named.Add:
		l, r, err := resolvePair(ctx, scope, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Add{l, r}, nil

	case named.Sub:
		l, r, err := resolvePair(ctx, scope, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Sub{l, r}, nil

	case named.IsZero:
		operand, err := Resolve(ctx, scope, e.Operand)
		if err != nil {
			return nil, err
		}
		return IsZero{operand}, nil

	case named.IfThenElse:
		cond, err := Resolve(ctx, scope, e.Cond)
		if err != nil {
			return nil, err
		}
		then, els, err := resolvePair(ctx, scope, e.Then, e.Else)
		if err != nil {
			return nil, err
		}
		return IfThenElse{cond, then, els}, nil

	case named.LetIn:
		bound, err := Resolve(ctx, scope, e.Bound)
		if err != nil {
			return nil, err
		}
		body, err := Resolve(ctx, scope.Push(e.Name), e.Body)
		if err != nil {
			return nil, err
		}
		return LetIn{bound, body}, nil

	case named.Fun:
		body, err := Resolve(ctx, scope.Push(e.Param), e.Body)
		if err != nil {
			return nil, err
		}
		return Fun{body}, nil

	case named.App:
		fn, arg, err := resolvePair(ctx, scope, e.Fun, e.Arg)
		if err != nil {
			return nil, err
		}
		return App{fn, arg}, nil

	default:
		return nil, errors.Errorf("expression of type %T is unhandled", expr)
	}
}

func resolvePair(ctx context.Context, scope Scope, left, right named.Expr) (Expr, Expr, error) {
	l, err := Resolve(ctx, scope, left)
	if err != nil {
		return nil, nil, err
	}
	r, err := Resolve(ctx, scope, right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
