// Package typing defines the explicitly typed expression grammar and checks
// expressions against it.
package typing

import (
	"fmt"

	"github.com/vito/letlang/pkg/hm"
)

// Expr is a node of the typed grammar. The set of nodes is closed.
type Expr interface {
	fmt.Stringer
	isExpr()
}

type Num struct {
	Value int
}

type Var struct {
	Name string
}

type Add struct {
	Left, Right Expr
}

type Sub struct {
	Left, Right Expr
}

type IsZero struct {
	Operand Expr
}

type IfThenElse struct {
	Cond, Then, Else Expr
}

type LetIn struct {
	Name  string
	Bound Expr
	Body  Expr
}

// LetRecIn binds a recursive function Func with parameter Param of type
// ParamType and declared result ReturnType, visible in its own Body and in Rest.
type LetRecIn struct {
	Func       string
	Param      string
	ParamType  hm.Type
	ReturnType hm.Type
	Body       Expr
	Rest       Expr
}

type Fun struct {
	Param     string
	ParamType hm.Type
	Body      Expr
}

type App struct {
	Fun, Arg Expr
}

func (Num) isExpr()        {}
func (Var) isExpr()        {}
func (Add) isExpr()        {}
func (Sub) isExpr()        {}
func (IsZero) isExpr()     {}
func (IfThenElse) isExpr() {}
func (LetIn) isExpr()      {}
func (LetRecIn) isExpr()   {}
func (Fun) isExpr()        {}
func (App) isExpr()        {}

func (n Num) String() string    { return fmt.Sprint(n.Value) }
func (v Var) String() string    { return v.Name }
func (a Add) String() string    { return fmt.Sprintf("(%s + %s)", a.Left, a.Right) }
func (s Sub) String() string    { return fmt.Sprintf("(%s - %s)", s.Left, s.Right) }
func (z IsZero) String() string { return fmt.Sprintf("(iszero %s)", z.Operand) }

func (i IfThenElse) String() string {
	return fmt.Sprintf("(if %s then %s else %s)", i.Cond, i.Then, i.Else)
}

func (l LetIn) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Bound, l.Body)
}

func (l LetRecIn) String() string {
	return fmt.Sprintf("(let rec %s (%s: %s): %s = %s in %s)",
		l.Func, l.Param, l.ParamType, l.ReturnType, l.Body, l.Rest)
}

func (f Fun) String() string {
	return fmt.Sprintf("(fun %s: %s -> %s)", f.Param, f.ParamType, f.Body)
}

func (a App) String() string { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }
