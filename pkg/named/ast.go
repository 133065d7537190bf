// Package named defines the untyped expression grammar whose binders and
// variables are identified by name.
package named

import (
	"fmt"
	"strconv"
)

// Expr is a node of the named grammar. The set of nodes is closed.
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

// LetIn binds Name to Bound within Body.
type LetIn struct {
	Name  string
	Bound Expr
	Body  Expr
}

type Fun struct {
	Param string
	Body  Expr
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
func (Fun) isExpr()        {}
func (App) isExpr()        {}

func (n Num) String() string        { return strconv.Itoa(n.Value) }
func (v Var) String() string        { return v.Name }
func (a Add) String() string        { return fmt.Sprintf("%s + %s", a.Left, a.Right) }
func (s Sub) String() string        { return fmt.Sprintf("%s - %s", s.Left, s.Right) }
func (z IsZero) String() string     { return fmt.Sprintf("iszero %s", z.Operand) }
func (i IfThenElse) String() string { return fmt.Sprintf("(if %s then %s else %s)", i.Cond, i.Then, i.Else) }
func (l LetIn) String() string      { return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Bound, l.Body) }
func (f Fun) String() string        { return fmt.Sprintf("(fun %s -> %s)", f.Param, f.Body) }
func (a App) String() string        { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }
