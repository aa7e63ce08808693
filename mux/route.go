package mux

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/vitalvas/maskroute/mask"
)

// Matcher is implemented by everything a Router can dispatch to: mask
// routes, regexp routes and nested routers.
type Matcher interface {
	// Match reports whether the matcher accepts the request. It has no side
	// effects and may be called any number of times.
	Match(req *http.Request) bool

	// ServeResponse writes the response for a request Match accepted. It
	// returns ErrNoMatch when called for a request Match rejects.
	ServeResponse(w http.ResponseWriter, req *http.Request) error
}

// Route matches the request path against a mask.
type Route struct {
	mask        *mask.Mask
	handler     http.Handler
	name        string
	err         error
	namedRoutes map[string]*Route
	transform   func(string) string
}

// NewRoute compiles tpl into a standalone route. It returns a
// *mask.MalformedMaskError for an invalid mask.
func NewRoute(tpl string) (*Route, error) {
	m, err := mask.Compile(tpl)
	if err != nil {
		return nil, err
	}
	return &Route{mask: m}, nil
}

// Match reports whether the request path matches the route mask.
func (r *Route) Match(req *http.Request) bool {
	return r.mask.Match(pathname(r.transform, req.URL.Path))
}

// ServeResponse calls the route handler with the resolved parameters stored
// in the request context, see Vars.
func (r *Route) ServeResponse(w http.ResponseWriter, req *http.Request) error {
	b, ok := r.mask.Bind(pathname(r.transform, req.URL.Path))
	if !ok {
		return ErrNoMatch
	}

	handler := r.handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	handler.ServeHTTP(w, setRouteContext(req, r, b.Params()))
	return nil
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	r.handler = handler
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// TransformPathname sets the hook applied to the request path before
// matching.
func (r *Route) TransformPathname(fn func(string) string) *Route {
	r.transform = fn
	return r
}

// Name sets the name for the route, used to build URLs. Naming a route
// twice records an error, see GetError.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.namedRoutes != nil {
		if _, ok := r.namedRoutes[name]; ok {
			r.err = fmt.Errorf("mux: route name %q already registered", name)
			return r
		}
		r.namedRoutes[name] = r
	}
	r.name = name
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// GetError returns an error recorded while configuring the route.
func (r *Route) GetError() error {
	return r.err
}

// GetMask returns the compiled mask of the route.
func (r *Route) GetMask() *mask.Mask {
	return r.mask
}

// GetPathTemplate returns the mask text the route was created with.
func (r *Route) GetPathTemplate() string {
	return r.mask.String()
}

// GetVarNames returns the parameter names declared by the mask, in order.
func (r *Route) GetVarNames() []string {
	params := r.mask.Params()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// URL builds the path for the route from key/value pairs of parameters.
// Values are substituted as given; a parameter without a value leaves an
// empty segment.
func (r *Route) URL(pairs ...string) (*url.URL, error) {
	if r.err != nil {
		return nil, r.err
	}
	values, err := mapFromPairsToString(pairs...)
	if err != nil {
		return nil, err
	}
	return &url.URL{
		Path: "/" + r.mask.Reconstruct(values),
	}, nil
}

// RegexpRoute matches the cleaned request path against a regular
// expression. Named groups become route parameters.
type RegexpRoute struct {
	re        *regexp.Regexp
	handler   http.Handler
	transform func(string) string
}

// NewRegexpRoute compiles expr into a route.
func NewRegexpRoute(expr string, handler http.Handler) (*RegexpRoute, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("mux: invalid route regexp %q: %w", expr, err)
	}
	return &RegexpRoute{re: re, handler: handler}, nil
}

// Match reports whether the expression matches the request path.
func (r *RegexpRoute) Match(req *http.Request) bool {
	return r.re.MatchString(pathname(r.transform, req.URL.Path))
}

// ServeResponse calls the route handler with the named groups of the
// expression stored in the request context.
func (r *RegexpRoute) ServeResponse(w http.ResponseWriter, req *http.Request) error {
	matches := r.re.FindStringSubmatch(pathname(r.transform, req.URL.Path))
	if matches == nil {
		return ErrNoMatch
	}

	vars := make(map[string]string)
	for i, name := range r.re.SubexpNames() {
		if i == 0 || name == "" || i >= len(matches) {
			continue
		}
		vars[name] = matches[i]
	}

	handler := r.handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	handler.ServeHTTP(w, setRouteContext(req, r, vars))
	return nil
}

// TransformPathname sets the hook applied to the request path before
// matching.
func (r *RegexpRoute) TransformPathname(fn func(string) string) *RegexpRoute {
	r.transform = fn
	return r
}

// String returns the source text of the expression.
func (r *RegexpRoute) String() string {
	return r.re.String()
}
