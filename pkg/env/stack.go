package env

import (
	"slices"

	"github.com/samber/lo"
)

// Stack is an ordered list of binders, innermost last.
//
// Push returns a new Stack and leaves the receiver untouched, so every branch
// of a traversal can carry its own scope.
type Stack[T comparable] struct {
	binders []T
}

func NewStack[T comparable]() Stack[T] {
	return Stack[T]{}
}

// Push binds x as the new innermost binder.
func (s Stack[T]) Push(x T) Stack[T] {
	// full slice expression forces append to copy
	return Stack[T]{binders: append(s.binders[:len(s.binders):len(s.binders)], x)}
}

// IndexOf returns the de Bruijn index of x: 0 for the innermost binder,
// counting outwards.
func (s Stack[T]) IndexOf(x T) (int, bool) {
	i := lo.LastIndexOf(s.binders, x)
	if i < 0 {
		return 0, false
	}
	return len(s.binders) - 1 - i, true
}

func (s Stack[T]) Len() int {
	return len(s.binders)
}

// Binders returns the binders innermost first.
func (s Stack[T]) Binders() []T {
	out := slices.Clone(s.binders)
	slices.Reverse(out)
	return out
}
