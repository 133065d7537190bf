package typing

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/vito/letlang/pkg/env"
	"github.com/vito/letlang/pkg/hm"
)

// TypeOf infers the type of expr in an empty environment.
//
// Ill-typed expressions yield hm.TypeMismatchError or hm.NotAFunctionError.
// A variable with no binder yields *env.UnboundError, which is not a type
// error: the checker expects closed trees.
func TypeOf(ctx context.Context, expr Expr) (hm.Type, error) {
	return Check(ctx, hm.NewSimpleEnv(), expr)
}

// Check infers the type of expr in the given environment. Bindings introduced
// by expr are only visible to the subtrees they scope over.
func Check(ctx context.Context, env hm.Env, expr Expr) (hm.Type, error) {
	switch e := expr.(type) {
	case Num:
		return hm.Int, nil

	case Var:
		t, found := env.TypeOf(e.Name)
		if !found {
			return nil, unbound(e.Name)
		}
		return t, nil

	case Add:
		return checkArith(ctx, env, e.Left, e.Right)

	case Sub:
		return checkArith(ctx, env, e.Left, e.Right)

	case IsZero:
		t, err := Check(ctx, env, e.Operand)
		if err != nil {
			return nil, err
		}
		if err := hm.Unify(hm.Int, t); err != nil {
			return nil, err
		}
		return hm.Bool, nil

	case IfThenElse:
		tCond, err := Check(ctx, env, e.Cond)
		if err != nil {
			return nil, err
		}
		if err := hm.Unify(hm.Bool, tCond); err != nil {
			return nil, err
		}
		tThen, err := Check(ctx, env, e.Then)
		if err != nil {
			return nil, err
		}
		tElse, err := Check(ctx, env, e.Else)
		if err != nil {
			return nil, err
		}
		if err := hm.Unify(tThen, tElse); err != nil {
			return nil, err
		}
		return tThen, nil

	case LetIn:
		tBound, err := Check(ctx, env, e.Bound)
		if err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "binding", "name", e.Name, "type", tBound)
		return Check(ctx, env.Add(e.Name, tBound), e.Body)

	case LetRecIn:
		if e.ParamType == nil || e.ReturnType == nil {
			return nil, errors.Errorf("missing type annotation on recursive function %s", e.Func)
		}
		fnType := hm.NewFnType(e.ParamType, e.ReturnType)
		slog.DebugContext(ctx, "binding recursive function", "name", e.Func, "type", fnType)
		withFn := env.Add(e.Func, fnType)
		tBody, err := Check(ctx, withFn.Add(e.Param, e.ParamType), e.Body)
		if err != nil {
			return nil, err
		}
		if err := hm.Unify(e.ReturnType, tBody); err != nil {
			return nil, err
		}
		return Check(ctx, withFn, e.Rest)

	case Fun:
		if e.ParamType == nil {
			return nil, errors.Errorf("missing type annotation on parameter %s", e.Param)
		}
		tBody, err := Check(ctx, env.Add(e.Param, e.ParamType), e.Body)
		if err != nil {
			return nil, err
		}
		return hm.NewFnType(e.ParamType, tBody), nil

	case App:
		tFun, err := Check(ctx, env, e.Fun)
		if err != nil {
			return nil, err
		}
		tArg, err := Check(ctx, env, e.Arg)
		if err != nil {
			return nil, err
		}
		ft, err := hm.UnifyFunction(tFun)
		if err != nil {
			return nil, err
		}
		if err := hm.Unify(ft.Arg(), tArg); err != nil {
			return nil, err
		}
		return ft.Ret(), nil

	default:
		return nil, errors.Errorf("expression of type %T is unhandled", expr)
	}
}

func unbound(name string) error {
	return &env.UnboundError{Name: name}
}

// checkArith checks both operands of Add or Sub. When both are wrong the left
// operand is reported.
func checkArith(ctx context.Context, env hm.Env, left, right Expr) (hm.Type, error) {
	tLeft, err := Check(ctx, env, left)
	if err != nil {
		return nil, err
	}
	tRight, err := Check(ctx, env, right)
	if err != nil {
		return nil, err
	}
	if err := hm.Unify(hm.Int, tLeft); err != nil {
		return nil, err
	}
	if err := hm.Unify(hm.Int, tRight); err != nil {
		return nil, err
	}
	return hm.Int, nil
}
