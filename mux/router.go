package mux

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// Router dispatches a request to the first registered matcher that accepts
// it.
//
// It implements the http.Handler interface, so it can be registered to serve
// requests:
//
//	r := mux.NewRouter()
//	r.HandleFunc("[<presenter=homepage>[/<action=default>]]", handler)
//	http.ListenAndServe(":8080", r)
//
// A Router is itself a Matcher and can be added to another Router.
type Router struct {
	// NotFoundHandler is called when no matcher accepts the request.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	matchers    []Matcher
	namedRoutes map[string]*Route
	middlewares []MiddlewareFunc

	transform func(string) string
	logger    *slog.Logger
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
		logger:      slog.New(slog.DiscardHandler),
	}
}

// ServeHTTP dispatches the request to the first matching matcher, or to
// NotFoundHandler. A matcher failing to serve a request it accepted is
// logged and answered with 500 Internal Server Error.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m := r.find(req)
	if m == nil {
		handler := r.NotFoundHandler
		if handler == nil {
			handler = http.NotFoundHandler()
		}
		handler.ServeHTTP(w, req)
		return
	}

	if err := r.serve(m, w, req); err != nil {
		r.logger.ErrorContext(req.Context(), "mux: serve response failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Match reports whether any registered matcher accepts the request.
func (r *Router) Match(req *http.Request) bool {
	return r.find(req) != nil
}

// ServeResponse serves the request with the first matching matcher. It
// returns ErrNoMatch when none accepts it.
func (r *Router) ServeResponse(w http.ResponseWriter, req *http.Request) error {
	m := r.find(req)
	if m == nil {
		return ErrNoMatch
	}
	return r.serve(m, w, req)
}

func (r *Router) find(req *http.Request) Matcher {
	if r.transform != nil {
		req = r.transformRequest(req)
	}
	for _, m := range r.matchers {
		if m.Match(req) {
			return m
		}
	}
	return nil
}

// serve runs the middleware chain around m.ServeResponse.
func (r *Router) serve(m Matcher, w http.ResponseWriter, req *http.Request) error {
	if r.transform != nil {
		req = r.transformRequest(req)
	}

	var err error
	handler := r.applyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		err = m.ServeResponse(w, req)
	}))
	handler.ServeHTTP(w, req)

	return err
}

// transformRequest returns a shallow copy of req with the pathname hook
// applied to its path.
func (r *Router) transformRequest(req *http.Request) *http.Request {
	p := r.transform(req.URL.Path)
	if p == req.URL.Path {
		return req
	}
	u := *req.URL
	u.Path = p
	u.RawPath = ""
	out := req.Clone(req.Context())
	out.URL = &u
	return out
}

// TransformPathname sets the hook applied to every request path before it
// is matched, e.g. TrimPrefix for a router mounted under a path prefix.
func (r *Router) TransformPathname(fn func(string) string) *Router {
	r.transform = fn
	return r
}

// Logger sets the logger used for dispatch failures. Nothing is logged by
// default.
func (r *Router) Logger(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r.logger = logger
	return r
}

// --- Registration ---

// Add appends a matcher. Matchers are tried in registration order.
func (r *Router) Add(m Matcher) {
	r.matchers = append(r.matchers, m)
}

// NewRoute compiles tpl and registers an empty route for configuration.
// It returns a *mask.MalformedMaskError for an invalid mask.
func (r *Router) NewRoute(tpl string) (*Route, error) {
	route, err := NewRoute(tpl)
	if err != nil {
		return nil, err
	}
	route.namedRoutes = r.namedRoutes
	r.Add(route)
	return route, nil
}

// Handle registers a new mask route with a handler.
func (r *Router) Handle(tpl string, handler http.Handler) (*Route, error) {
	route, err := r.NewRoute(tpl)
	if err != nil {
		return nil, err
	}
	return route.Handler(handler), nil
}

// HandleFunc registers a new mask route with a handler function.
func (r *Router) HandleFunc(tpl string, f func(http.ResponseWriter, *http.Request)) (*Route, error) {
	return r.Handle(tpl, http.HandlerFunc(f))
}

// HandleRegexp registers a new regexp route with a handler.
func (r *Router) HandleRegexp(expr string, handler http.Handler) (*RegexpRoute, error) {
	route, err := NewRegexpRoute(expr, handler)
	if err != nil {
		return nil, err
	}
	r.Add(route)
	return route, nil
}

// Get returns a route registered with the given name.
func (r *Router) Get(name string) *Route {
	return r.namedRoutes[name]
}

// URL builds the path of the route registered under name. It returns an
// error wrapping ErrNotFound for an unknown name.
func (r *Router) URL(name string, pairs ...string) (*url.URL, error) {
	route := r.Get(name)
	if route == nil {
		return nil, fmt.Errorf("mux: route %q: %w", name, ErrNotFound)
	}
	return route.URL(pairs...)
}

// Walk calls walkFn for every matcher of the router and of nested routers,
// depth first.
func (r *Router) Walk(walkFn WalkFunc) error {
	for _, m := range r.matchers {
		err := walkFn(m, r)
		if err == SkipRouter {
			continue
		}
		if err != nil {
			return err
		}
		if sr, ok := m.(*Router); ok {
			if err := sr.Walk(walkFn); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// matched requests only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}
