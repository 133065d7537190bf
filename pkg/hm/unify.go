package hm

import (
	"fmt"
)

// TypeMismatchError is reported when a construct requires one type and a
// sub-expression has another.
type TypeMismatchError struct {
	Expected Type
	Found    Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// NotAFunctionError is reported when a non-function is applied.
type NotAFunctionError struct {
	Found Type
}

func (e NotAFunctionError) Error() string {
	return fmt.Sprintf("Not a function type: %s", e.Found)
}

// Unify checks that found is exactly the expected type. Every binder carries
// an annotation, so there are no type variables to solve for and unification
// reduces to structural equality.
func Unify(expected, found Type) error {
	if expected.Eq(found) {
		return nil
	}
	return TypeMismatchError{Expected: expected, Found: found}
}

// UnifyFunction checks that t is a function type and returns it.
func UnifyFunction(t Type) (*FunctionType, error) {
	if ft, ok := t.(*FunctionType); ok {
		return ft, nil
	}
	return nil, NotAFunctionError{Found: t}
}
