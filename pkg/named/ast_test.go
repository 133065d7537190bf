package named

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	for _, tt := range []struct {
		expr     Expr
		expected string
	}{
		{Num{42}, "42"},
		{Add{Num{1}, Var{"x"}}, "1 + x"},
		{IsZero{Sub{Var{"x"}, Num{1}}}, "iszero x - 1"},
		{IfThenElse{IsZero{Num{0}}, Num{1}, Num{0}}, "(if iszero 0 then 1 else 0)"},
		{LetIn{"x", Num{1}, Var{"x"}}, "(let x = 1 in x)"},
		{App{Fun{"x", Var{"x"}}, Num{4}}, "((fun x -> x) 4)"},
	} {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}
