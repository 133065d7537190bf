// Package nameless defines the de Bruijn indexed grammar and converts named
// expressions into it.
package nameless

import (
	"fmt"
	"strconv"
)

// Expr is a node of the nameless grammar. The set of nodes is closed.
type Expr interface {
	fmt.Stringer
	isExpr()
}

type Num struct {
	Value int
}

// Var refers to the binder Index positions out from the use, 0 being the
// innermost.
type Var struct {
	Index int
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

// LetIn binds Bound as index 0 within Body.
type LetIn struct {
	Bound Expr
	Body  Expr
}

// Fun binds its argument as index 0 within Body.
type Fun struct {
	Body Expr
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
func (v Var) String() string        { return "#" + strconv.Itoa(v.Index) }
func (a Add) String() string        { return fmt.Sprintf("%s + %s", a.Left, a.Right) }
func (s Sub) String() string        { return fmt.Sprintf("%s - %s", s.Left, s.Right) }
func (z IsZero) String() string     { return fmt.Sprintf("iszero %s", z.Operand) }
func (i IfThenElse) String() string { return fmt.Sprintf("(if %s then %s else %s)", i.Cond, i.Then, i.Else) }
func (l LetIn) String() string      { return fmt.Sprintf("(let %s in %s)", l.Bound, l.Body) }
func (f Fun) String() string        { return fmt.Sprintf("(fun %s)", f.Body) }
func (a App) String() string        { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }

// Indices returns the variable indices of expr in left-to-right order.
func Indices(expr Expr) []int {
	var out []int
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case Var:
			out = append(out, e.Index)
		case Add:
			walk(e.Left)
			walk(e.Right)
		case Sub:
			walk(e.Left)
			walk(e.Right)
		case IsZero:
			walk(e.Operand)
		case IfThenElse:
			walk(e.Cond)
			walk(e.Then)
			walk(e.Else)
		case LetIn:
			walk(e.Bound)
			walk(e.Body)
		case Fun:
			walk(e.Body)
		case App:
			walk(e.Fun)
			walk(e.Arg)
		}
	}
	walk(expr)
	return out
}
