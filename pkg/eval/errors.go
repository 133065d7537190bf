package eval

import (
	"fmt"
)

// RuntimeError is raised when an operation receives a value of the wrong
// variant. Trees that pass the type checker never produce one.
type RuntimeError struct {
	// Construct is the node that rejected the value, e.g. "add" or "if".
	Construct string
	Expected  string
	Got       Value
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s %s", e.Construct, e.Expected, kind(e.Got), e.Got)
}
