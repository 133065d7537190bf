package hm

import (
	"fmt"
)

// Type represents all possible type constructors
type Type interface {
	Name() string
	Eq(Type) bool
	fmt.Stringer
}

// TypeConst is a base type such as Int or Bool
type TypeConst string

const (
	Int  TypeConst = "Int"
	Bool TypeConst = "Bool"
)

func (tc TypeConst) Name() string {
	return string(tc)
}

func (tc TypeConst) Eq(other Type) bool {
	if ot, ok := other.(TypeConst); ok {
		return tc == ot
	}
	return false
}

func (tc TypeConst) String() string {
	return string(tc)
}

func (tc TypeConst) Format(s fmt.State, c rune) {
	_, _ = fmt.Fprintf(s, "%s", string(tc))
}

// FunctionType represents a function type
type FunctionType struct {
	arg Type
	ret Type
}

func NewFnType(arg, ret Type) *FunctionType {
	return &FunctionType{arg: arg, ret: ret}
}

func (ft *FunctionType) Name() string {
	return ft.String()
}

func (ft *FunctionType) Eq(other Type) bool {
	if ot, ok := other.(*FunctionType); ok {
		return ft.arg.Eq(ot.arg) && ft.ret.Eq(ot.ret)
	}
	return false
}

func (ft *FunctionType) String() string {
	return fmt.Sprintf("(%s → %s)", ft.arg, ft.ret)
}

func (ft *FunctionType) Format(s fmt.State, c rune) {
	_, _ = fmt.Fprintf(s, "%s", ft.String())
}

// Arg returns the argument type
func (ft *FunctionType) Arg() Type {
	return ft.arg
}

// Ret returns the return type
func (ft *FunctionType) Ret() Type {
	return ft.ret
}
