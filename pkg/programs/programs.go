// Package programs is a catalogue of example expression trees for each stage.
package programs

import (
	"github.com/iancoleman/strcase"
	"github.com/samber/lo"

	"github.com/vito/letlang/pkg/hm"
	"github.com/vito/letlang/pkg/named"
	"github.com/vito/letlang/pkg/typing"
)

// Program is a named example tree.
type Program[E any] struct {
	Name string
	Doc  string
	Expr E
}

// Named programs run through the evaluator and the resolver.
var Named = []Program[named.Expr]{
	{
		Name: "add",
		Doc:  "1 + 2",
		Expr: named.Add{Left: named.Num{Value: 1}, Right: named.Num{Value: 2}},
	},
	{
		Name: "sub",
		Doc:  "5 - 7",
		Expr: named.Sub{Left: named.Num{Value: 5}, Right: named.Num{Value: 7}},
	},
	{
		Name: "is-zero",
		Doc:  "iszero 0",
		Expr: named.IsZero{Operand: named.Num{Value: 0}},
	},
	{
		Name: "if-zero",
		Doc:  "if iszero 0 then 1 else 0",
		Expr: named.IfThenElse{
			Cond: named.IsZero{Operand: named.Num{Value: 0}},
			Then: named.Num{Value: 1},
			Else: named.Num{Value: 0},
		},
	},
	{
		Name: "let",
		Doc:  "let x = 5 - 3 in x - 1",
		Expr: named.LetIn{
			Name:  "x",
			Bound: named.Sub{Left: named.Num{Value: 5}, Right: named.Num{Value: 3}},
			Body:  named.Sub{Left: named.Var{Name: "x"}, Right: named.Num{Value: 1}},
		},
	},
	{
		Name: "let-shadow",
		Doc:  "let x = 1 in let x = 2 in x",
		Expr: named.LetIn{
			Name:  "x",
			Bound: named.Num{Value: 1},
			Body:  named.LetIn{Name: "x", Bound: named.Num{Value: 2}, Body: named.Var{Name: "x"}},
		},
	},
	{
		Name: "nested-let",
		Doc:  "let x = 1 in let y = 2 in x + y",
		Expr: named.LetIn{
			Name:  "x",
			Bound: named.Num{Value: 1},
			Body: named.LetIn{
				Name:  "y",
				Bound: named.Num{Value: 2},
				Body:  named.Add{Left: named.Var{Name: "x"}, Right: named.Var{Name: "y"}},
			},
		},
	},
	{
		Name: "apply",
		Doc:  "(fun x -> x + 1) 4",
		Expr: named.App{
			Fun: named.Fun{Param: "x", Body: named.Add{Left: named.Var{Name: "x"}, Right: named.Num{Value: 1}}},
			Arg: named.Num{Value: 4},
		},
	},
	{
		Name: "decrement",
		Doc:  "fun x -> x - 1",
		Expr: named.Fun{Param: "x", Body: named.Sub{Left: named.Var{Name: "x"}, Right: named.Num{Value: 1}}},
	},
	{
		Name: "capture",
		Doc:  "let y = 10 in let f = fun x -> x + y in let y = 0 in f 1",
		Expr: named.LetIn{
			Name:  "y",
			Bound: named.Num{Value: 10},
			Body: named.LetIn{
				Name:  "f",
				Bound: named.Fun{Param: "x", Body: named.Add{Left: named.Var{Name: "x"}, Right: named.Var{Name: "y"}}},
				Body: named.LetIn{
					Name:  "y",
					Bound: named.Num{Value: 0},
					Body:  named.App{Fun: named.Var{Name: "f"}, Arg: named.Num{Value: 1}},
				},
			},
		},
	},
	{
		Name: "unbound",
		Doc:  "x + 1",
		Expr: named.Add{Left: named.Var{Name: "x"}, Right: named.Num{Value: 1}},
	},
	{
		Name: "add-bool",
		Doc:  "1 + iszero 1",
		Expr: named.Add{Left: named.Num{Value: 1}, Right: named.IsZero{Operand: named.Num{Value: 1}}},
	},
}

// Typed programs run through the type checker.
var Typed = []Program[typing.Expr]{
	{
		Name: "add-bool",
		Doc:  "1 + iszero 1",
		Expr: typing.Add{Left: typing.Num{Value: 1}, Right: typing.IsZero{Operand: typing.Num{Value: 1}}},
	},
	{
		Name: "higher-order",
		Doc:  "fun f: (Int → Bool) -> if f 3 then 11 else 22",
		Expr: typing.Fun{
			Param:     "f",
			ParamType: hm.NewFnType(hm.Int, hm.Bool),
			Body: typing.IfThenElse{
				Cond: typing.App{Fun: typing.Var{Name: "f"}, Arg: typing.Num{Value: 3}},
				Then: typing.Num{Value: 11},
				Else: typing.Num{Value: 22},
			},
		},
	},
	{
		Name: "sum-to",
		Doc:  "let rec f (x: Int): Int = if iszero x then 0 else x + f (x - 1) in f",
		Expr: typing.LetRecIn{
			Func:       "f",
			Param:      "x",
			ParamType:  hm.Int,
			ReturnType: hm.Int,
			Body: typing.IfThenElse{
				Cond: typing.IsZero{Operand: typing.Var{Name: "x"}},
				Then: typing.Num{Value: 0},
				Else: typing.Add{
					Left: typing.Var{Name: "x"},
					Right: typing.App{
						Fun: typing.Var{Name: "f"},
						Arg: typing.Sub{Left: typing.Var{Name: "x"}, Right: typing.Num{Value: 1}},
					},
				},
			},
			Rest: typing.Var{Name: "f"},
		},
	},
	{
		Name: "apply-number",
		Doc:  "1 2",
		Expr: typing.App{Fun: typing.Num{Value: 1}, Arg: typing.Num{Value: 2}},
	},
	{
		Name: "branch-mismatch",
		Doc:  "if iszero 0 then 1 else iszero 1",
		Expr: typing.IfThenElse{
			Cond: typing.IsZero{Operand: typing.Num{Value: 0}},
			Then: typing.Num{Value: 1},
			Else: typing.IsZero{Operand: typing.Num{Value: 1}},
		},
	},
}

// Select returns the programs whose names match, in catalogue order. Names are
// compared in kebab case, so "letShadow" and "let_shadow" both find
// "let-shadow". No names selects every program. Unknown names are returned
// separately.
func Select[E any](catalogue []Program[E], names ...string) ([]Program[E], []string) {
	if len(names) == 0 {
		return catalogue, nil
	}
	wanted := lo.Map(names, func(n string, _ int) string { return strcase.ToKebab(n) })
	known := lo.Map(catalogue, func(p Program[E], _ int) string { return p.Name })
	selected := lo.Filter(catalogue, func(p Program[E], _ int) bool {
		return lo.Contains(wanted, p.Name)
	})
	return selected, lo.Uniq(lo.Without(wanted, known...))
}

// Unknown returns the names that match no program in either catalogue.
func Unknown(names ...string) []string {
	_, missingNamed := Select(Named, names...)
	_, missingTyped := Select(Typed, names...)
	return lo.Intersect(missingNamed, missingTyped)
}
