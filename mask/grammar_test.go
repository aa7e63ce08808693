package mask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	t.Run("all token forms", func(t *testing.T) {
		tokens := scanTokens(`<a>/<b=x>/<c \d+>/<d=5 [0-9]>`)
		require.Len(t, tokens, 4)

		assert.Equal(t, "a", tokens[0].name)
		assert.False(t, tokens[0].hasExpr)

		assert.Equal(t, "b", tokens[1].name)
		assert.Equal(t, "x", tokens[1].def)

		assert.Equal(t, "c", tokens[2].name)
		assert.Equal(t, "", tokens[2].def)
		assert.Equal(t, `\d+`, tokens[2].expr)

		assert.Equal(t, "d", tokens[3].name)
		assert.Equal(t, "5", tokens[3].def)
		assert.Equal(t, "[0-9]", tokens[3].expr)
	})

	t.Run("token positions", func(t *testing.T) {
		tokens := scanTokens("page/<id>")
		require.Len(t, tokens, 1)
		assert.Equal(t, 5, tokens[0].start)
		assert.Equal(t, 9, tokens[0].end)
	})

	t.Run("default is trimmed", func(t *testing.T) {
		tokens := scanTokens("<d= y  [0-9]>")
		require.Len(t, tokens, 1)
		assert.Equal(t, "y", tokens[0].def)
		assert.Equal(t, "[0-9]", tokens[0].expr)
	})

	t.Run("names must start lowercase", func(t *testing.T) {
		assert.Empty(t, scanTokens("<Id>"))
		assert.Empty(t, scanTokens("<1d>"))
	})

	t.Run("hyphenated names are not parameters", func(t *testing.T) {
		assert.Empty(t, scanTokens("<vegetable-name>"))
	})

	t.Run("no tokens", func(t *testing.T) {
		assert.Nil(t, scanTokens("foo/bar"))
	})
}

func TestParseDeclarations(t *testing.T) {
	t.Run("order and defaults", func(t *testing.T) {
		params, err := parseDeclarations("<presenter=homepage>/<action=default>/<id>")
		require.NoError(t, err)
		require.Len(t, params, 3)

		assert.Equal(t, "presenter", params[0].Name)
		assert.Equal(t, 1, params[0].Order)
		assert.Equal(t, "homepage", params[0].Default)
		assert.True(t, params[0].HasDefault)

		assert.Equal(t, "action", params[1].Name)
		assert.Equal(t, 2, params[1].Order)

		assert.Equal(t, "id", params[2].Name)
		assert.Equal(t, 3, params[2].Order)
		assert.False(t, params[2].HasDefault)
		assert.Nil(t, params[2].Expr)
	})

	t.Run("expression is compiled", func(t *testing.T) {
		params, err := parseDeclarations(`page/<id=123 \d+>`)
		require.NoError(t, err)
		require.Len(t, params, 1)
		require.NotNil(t, params[0].Expr)
		assert.Equal(t, `\d+`, params[0].Expr.String())
		assert.Equal(t, "123", params[0].Default)
	})

	t.Run("blank default is absent", func(t *testing.T) {
		params, err := parseDeclarations("<s= >")
		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.False(t, params[0].HasDefault)
		assert.Equal(t, "", params[0].Default)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := parseDeclarations("page/<id (>")
		require.Error(t, err)

		var me *MalformedMaskError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, "id", me.Param)
		assert.ErrorIs(t, err, ErrMalformedMask)
	})

	t.Run("duplicate name keeps first order", func(t *testing.T) {
		params, err := parseDeclarations("<a=1>/<b>/<a=2>")
		require.NoError(t, err)
		require.Len(t, params, 2)
		assert.Equal(t, "a", params[0].Name)
		assert.Equal(t, 1, params[0].Order)
		assert.Equal(t, "2", params[0].Default)
		assert.Equal(t, "b", params[1].Name)
		assert.Equal(t, 2, params[1].Order)
	})

	t.Run("no parameters", func(t *testing.T) {
		params, err := parseDeclarations("foo/bar")
		require.NoError(t, err)
		assert.Empty(t, params)
	})
}
