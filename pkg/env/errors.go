package env

import "fmt"

// UnboundError is returned when a name has no enclosing binder.
//
// Every stage treats it as a defect in the input tree rather than a
// recoverable semantic error.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}
