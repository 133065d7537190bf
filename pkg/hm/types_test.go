package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeEquality(t *testing.T) {
	intToBool := NewFnType(Int, Bool)

	assert.True(t, Int.Eq(Int))
	assert.False(t, Int.Eq(Bool))
	assert.False(t, Int.Eq(intToBool))
	assert.True(t, intToBool.Eq(NewFnType(Int, Bool)))
	assert.False(t, intToBool.Eq(NewFnType(Bool, Bool)))
	assert.False(t, intToBool.Eq(NewFnType(Int, Int)))
	assert.True(t, NewFnType(intToBool, Int).Eq(NewFnType(NewFnType(Int, Bool), Int)))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Int", Int.String())
	assert.Equal(t, "Bool", Bool.Name())
	assert.Equal(t, "((Int → Bool) → Int)", NewFnType(NewFnType(Int, Bool), Int).String())
}

func TestUnify(t *testing.T) {
	require.NoError(t, Unify(NewFnType(Int, Int), NewFnType(Int, Int)))

	err := Unify(Int, Bool)
	require.Error(t, err)
	assert.Equal(t, TypeMismatchError{Expected: Int, Found: Bool}, err)
	assert.EqualError(t, err, "Type mismatch: expected Int, found Bool")

	_, err = UnifyFunction(Int)
	assert.Equal(t, NotAFunctionError{Found: Int}, err)
	assert.EqualError(t, err, "Not a function type: Int")

	ft, err := UnifyFunction(NewFnType(Int, Bool))
	require.NoError(t, err)
	assert.Equal(t, Bool, ft.Ret())
}

func TestSimpleEnvScoping(t *testing.T) {
	outer := NewSimpleEnv().Add("x", Int)
	inner := outer.Add("x", Bool).Add("y", Int)

	got, ok := inner.TypeOf("x")
	require.True(t, ok)
	assert.Equal(t, Bool, got)

	got, ok = outer.TypeOf("x")
	require.True(t, ok)
	assert.Equal(t, Int, got)

	_, ok = outer.TypeOf("y")
	assert.False(t, ok)
	assert.Equal(t, []string{"y", "x"}, inner.Names())
}
