package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVars(t *testing.T) {
	t.Run("returns nil without route context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, Vars(req))
	})

	t.Run("returns vars set by SetURLVars", func(t *testing.T) {
		req := SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
		assert.Equal(t, map[string]string{"id": "42"}, Vars(req))
	})
}

func TestVarGet(t *testing.T) {
	t.Run("existing var", func(t *testing.T) {
		req := SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
		val, ok := VarGet(req, "id")
		assert.True(t, ok)
		assert.Equal(t, "42", val)
	})

	t.Run("missing var", func(t *testing.T) {
		req := SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
		_, ok := VarGet(req, "name")
		assert.False(t, ok)
	})

	t.Run("no route context", func(t *testing.T) {
		_, ok := VarGet(httptest.NewRequest(http.MethodGet, "/", nil), "id")
		assert.False(t, ok)
	})
}

func TestCurrentRoute(t *testing.T) {
	t.Run("nil without route context", func(t *testing.T) {
		assert.Nil(t, CurrentRoute(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("SetURLVars keeps matcher", func(t *testing.T) {
		route, err := NewRoute("x")
		assert.NoError(t, err)

		req := setRouteContext(httptest.NewRequest(http.MethodGet, "/", nil), route, nil)
		req = SetURLVars(req, map[string]string{"a": "b"})
		assert.Same(t, route, CurrentRoute(req))
		assert.Equal(t, map[string]string{"a": "b"}, Vars(req))
	})
}
