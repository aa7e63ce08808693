// Package mux implements a request router that dispatches incoming HTTP
// requests to handlers registered with path masks.
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("[<presenter=homepage>[/<action=default>]]", PresenterHandler)
//	r.HandleFunc(`page/<id=1 ^\d+$>`, PageHandler)
//	http.Handle("/", r)
//
// Masks are compiled by package mask; Handle and HandleFunc return a
// *mask.MalformedMaskError for an invalid mask so registration fails early.
// Leading and trailing slashes of masks and request paths are ignored.
//
// Matchers are tried in registration order and the first one that accepts
// the request serves it. When none does, NotFoundHandler is used:
//
//	r.NotFoundHandler = http.HandlerFunc(custom404Handler)
//
// # Parameters
//
// Parameters resolved by the mask, defaults included, are stored in the
// request context:
//
//	vars := mux.Vars(r)
//	id, ok := mux.VarGet(r, "id")
//
// Only parameters with a value are present.
//
// # Matchers
//
// Anything implementing Matcher can be added with Router.Add. Besides mask
// routes the package provides RegexpRoute, which matches the cleaned path
// against a regular expression and exposes its named groups as parameters:
//
//	r.HandleRegexp(`^(?P<year>[0-9]{4})/(?P<slug>[a-z-]+)$`, ArchiveHandler)
//
// A Router is a Matcher as well, so routers nest.
//
// # Mounting
//
// TransformPathname installs a hook applied to every request path before
// matching. TrimPrefix covers the common case of a router mounted under a
// path prefix:
//
//	r.TransformPathname(mux.TrimPrefix("/my-root"))
//
// # Middleware
//
// Middleware wraps the handler of the matched route:
//
//	r.Use(mux.MiddlewareFunc(loggingMiddleware))
//
// # URL Building
//
// Named routes support reverse URL building. Values are substituted into the
// mask with its optional brackets removed:
//
//	route, _ := r.HandleFunc("<controller>/<action>/<id>", handler)
//	route.Name("detail")
//	u, err := r.URL("detail", "controller", "product", "action", "detail", "id", "abc123")
//	// u.Path == "/product/detail/abc123"
//
// # Walking Routes
//
// Walk visits every matcher of a router and its nested routers:
//
//	r.Walk(func(m mux.Matcher, router *mux.Router) error {
//	    if route, ok := m.(*mux.Route); ok {
//	        fmt.Println(route.GetPathTemplate())
//	    }
//	    return nil
//	})
package mux
