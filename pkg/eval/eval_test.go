package eval

import (
	"context"
	"os"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/letlang/pkg/env"
	. "github.com/vito/letlang/pkg/named"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type EvalSuite struct{}

func TestEval(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(EvalSuite{})
}

func (EvalSuite) TestArithmetic(ctx context.Context, t *testctx.T) {
	for _, pair := range [][2]int{{0, 0}, {1, 2}, {-7, 3}, {100, -100}} {
		a, b := pair[0], pair[1]
		require.Equal(t, Int{a + b}, MustEvaluate(ctx, Add{Num{a}, Num{b}}))
		require.Equal(t, Int{a - b}, MustEvaluate(ctx, Sub{Num{a}, Num{b}}))
	}
}

func (EvalSuite) TestIsZero(ctx context.Context, t *testctx.T) {
	require.Equal(t, Bool{true}, MustEvaluate(ctx, IsZero{Num{0}}))
	require.Equal(t, Bool{false}, MustEvaluate(ctx, IsZero{Num{3}}))
	require.Equal(t, Bool{false}, MustEvaluate(ctx, IsZero{Num{-1}}))
}

func (EvalSuite) TestConditionals(ctx context.Context, t *testctx.T) {
	require.Equal(t, Int{1}, MustEvaluate(ctx, IfThenElse{IsZero{Num{0}}, Num{1}, Num{0}}))
	require.Equal(t, Int{0}, MustEvaluate(ctx, IfThenElse{IsZero{Num{5}}, Num{1}, Num{0}}))

	t.Run("untaken branch is not evaluated", func(ctx context.Context, t *testctx.T) {
		val, err := Evaluate(ctx, IfThenElse{IsZero{Num{0}}, Num{1}, Var{"boom"}})
		require.NoError(t, err)
		require.Equal(t, Int{1}, val)

		val, err = Evaluate(ctx, IfThenElse{IsZero{Num{1}}, Add{Num{1}, IsZero{Num{0}}}, Num{2}})
		require.NoError(t, err)
		require.Equal(t, Int{2}, val)
	})

	t.Run("non-boolean condition", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, IfThenElse{Num{0}, Num{1}, Num{2}})
		var rtErr *RuntimeError
		require.ErrorAs(t, err, &rtErr)
		require.Equal(t, "if", rtErr.Construct)
		require.Equal(t, Int{0}, rtErr.Got)
	})
}

func (EvalSuite) TestLet(ctx context.Context, t *testctx.T) {
	require.Equal(t, Int{1}, MustEvaluate(ctx,
		LetIn{"x", Sub{Num{5}, Num{3}}, Sub{Var{"x"}, Num{1}}}))

	t.Run("shadowing", func(ctx context.Context, t *testctx.T) {
		require.Equal(t, Int{2}, MustEvaluate(ctx,
			LetIn{"x", Num{1}, LetIn{"x", Num{2}, Var{"x"}}}))
	})

	t.Run("inner binding does not reach sibling", func(ctx context.Context, t *testctx.T) {
		// let x = 1 in (let x = 2 in x) + x
		val := MustEvaluate(ctx, LetIn{"x", Num{1},
			Add{LetIn{"x", Num{2}, Var{"x"}}, Var{"x"}}})
		require.Equal(t, Int{3}, val)
	})

	t.Run("binding does not escape its body", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, Add{LetIn{"y", Num{1}, Var{"y"}}, Var{"y"}})
		var unbound *env.UnboundError
		require.ErrorAs(t, err, &unbound)
		require.Equal(t, "y", unbound.Name)
	})
}

func (EvalSuite) TestClosures(ctx context.Context, t *testctx.T) {
	require.Equal(t, Int{5}, MustEvaluate(ctx,
		App{Fun{"x", Add{Var{"x"}, Num{1}}}, Num{4}}))

	t.Run("captures defining scope", func(ctx context.Context, t *testctx.T) {
		// let y = 10 in let f = fun x -> x + y in let y = 0 in f 1
		val := MustEvaluate(ctx, LetIn{"y", Num{10},
			LetIn{"f", Fun{"x", Add{Var{"x"}, Var{"y"}}},
				LetIn{"y", Num{0}, App{Var{"f"}, Num{1}}}}})
		require.Equal(t, Int{11}, val)
	})

	t.Run("argument evaluated in caller scope", func(ctx context.Context, t *testctx.T) {
		// let x = 7 in (fun y -> y) x
		val := MustEvaluate(ctx, LetIn{"x", Num{7}, App{Fun{"y", Var{"y"}}, Var{"x"}}})
		require.Equal(t, Int{7}, val)
	})

	t.Run("curried application", func(ctx context.Context, t *testctx.T) {
		sub := Fun{"a", Fun{"b", Sub{Var{"a"}, Var{"b"}}}}
		require.Equal(t, Int{6}, MustEvaluate(ctx, App{App{sub, Num{10}}, Num{4}}))
	})

	t.Run("closure value", func(ctx context.Context, t *testctx.T) {
		val := MustEvaluate(ctx, LetIn{"k", Num{3}, Fun{"x", Var{"k"}}})
		closure, ok := val.(*Closure)
		require.True(t, ok)
		assert.Equal(t, "x", closure.Param)
		assert.Equal(t, "(fun x -> k)", closure.String())
		k, found := closure.Env.Lookup("k")
		require.True(t, found)
		assert.Equal(t, Int{3}, k)
	})

	t.Run("applying a non-closure", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, App{Num{1}, Num{2}})
		var rtErr *RuntimeError
		require.ErrorAs(t, err, &rtErr)
		require.EqualError(t, err, "application: expected Closure, got Int 1")
	})
}

func (EvalSuite) TestErrors(ctx context.Context, t *testctx.T) {
	t.Run("unbound variable", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, Add{Num{1}, Var{"nope"}})
		var unbound *env.UnboundError
		require.ErrorAs(t, err, &unbound)
		require.EqualError(t, err, "unbound variable: nope")
	})

	t.Run("adding a boolean", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, Add{Num{1}, IsZero{Num{0}}})
		require.EqualError(t, err, "add: expected Int, got Bool true")
	})

	t.Run("left operand fails first", func(ctx context.Context, t *testctx.T) {
		_, err := Evaluate(ctx, Sub{Var{"a"}, Var{"b"}})
		require.EqualError(t, err, "unbound variable: a")
	})

	t.Run("must panics", func(ctx context.Context, t *testctx.T) {
		require.Panics(t, func() {
			MustEvaluate(ctx, IsZero{Fun{"x", Var{"x"}}})
		})
	})
}
