package mux

import (
	"context"
	"errors"
	"net/http"
)

// routeContextKey is an unexported type for the single context key.
type routeContextKey struct{}

// ctxKey is the single context key used to store both matcher and vars.
var ctxKey = routeContextKey{}

// routeContext holds the matched matcher and the resolved parameters.
type routeContext struct {
	matcher Matcher
	vars    map[string]string
}

// Vars returns the route parameters for the current request, if any.
// Only parameters with a value are present.
func Vars(r *http.Request) map[string]string {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.vars
	}
	return nil
}

// VarGet returns the value of a single route parameter by name and a
// boolean indicating whether it exists.
func VarGet(r *http.Request, name string) (string, bool) {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok && rc.vars != nil {
		val, exists := rc.vars[name]
		return val, exists
	}
	return "", false
}

// CurrentRoute returns the matcher that dispatched the current request, if
// any. This only works inside the handler of the matched route.
func CurrentRoute(r *http.Request) Matcher {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.matcher
	}
	return nil
}

// SetURLVars sets the route parameters for the given request, returning the
// modified request. This is intended for testing route handlers.
func SetURLVars(r *http.Request, val map[string]string) *http.Request {
	var m Matcher
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		m = rc.matcher
	}
	return setRouteContext(r, m, val)
}

func setRouteContext(r *http.Request, m Matcher, vars map[string]string) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKey, &routeContext{matcher: m, vars: vars})
	return r.WithContext(ctx)
}

// WalkFunc is the type of the function called for each matcher visited by
// Walk. It receives the matcher and the router holding it.
type WalkFunc func(m Matcher, router *Router) error

// ErrNotFound is returned when a named route does not exist.
var ErrNotFound = errors.New("mux: route not found")

// ErrNoMatch is returned by ServeResponse when it is called for a request
// its Match method rejects. It signals a caller bug, not a missing route.
var ErrNoMatch = errors.New("mux: no matcher for request")

// SkipRouter is used as a return value from WalkFunc to indicate that the
// router that walk is about to descend into should be skipped.
var SkipRouter = errors.New("skip this router") //nolint:revive,staticcheck // gorilla/mux naming
