package programs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/letlang/pkg/eval"
	"github.com/vito/letlang/pkg/hm"
	"github.com/vito/letlang/pkg/typing"
)

func TestSelect(t *testing.T) {
	all, missing := Select(Named)
	assert.Len(t, all, len(Named))
	assert.Empty(t, missing)

	got, missing := Select(Named, "letShadow", "nested_let", "bogus")
	require.Len(t, got, 2)
	assert.Equal(t, "let-shadow", got[0].Name)
	assert.Equal(t, "nested-let", got[1].Name)
	assert.Equal(t, []string{"bogus"}, missing)
}

func TestUnknown(t *testing.T) {
	assert.Empty(t, Unknown("add", "sum-to", "addBool"))
	assert.Equal(t, []string{"typo"}, Unknown("add", "typo", "higher-order"))
}

func TestNamesAreUniqueKebab(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Named {
		assert.False(t, seen[p.Name], p.Name)
		seen[p.Name] = true
	}
	for _, p := range Typed {
		assert.NotEmpty(t, p.Doc)
	}
}

func TestCatalogueResults(t *testing.T) {
	ctx := context.Background()

	capture, _ := Select(Named, "capture")
	require.Len(t, capture, 1)
	assert.Equal(t, eval.Int{Value: 11}, eval.MustEvaluate(ctx, capture[0].Expr))

	sumTo, _ := Select(Typed, "sum-to")
	require.Len(t, sumTo, 1)
	ty, err := typing.TypeOf(ctx, sumTo[0].Expr)
	require.NoError(t, err)
	assert.True(t, hm.NewFnType(hm.Int, hm.Int).Eq(ty))
}
