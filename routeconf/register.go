package routeconf

import (
	"fmt"
	"net/http"

	"github.com/vitalvas/maskroute/mux"
)

// Build returns a router serving the table. Routes without a handler in
// handlers answer with their parameters as JSON, see mux.VarsHandler.
// Named mask routes can be reversed with the router URL method.
func (c *Config) Build(handlers map[string]http.Handler) (*mux.Router, error) {
	r := mux.NewRouter()
	if c.Prefix != "" {
		r.TransformPathname(mux.TrimPrefix(c.Prefix))
	}

	for i, rc := range c.Routes {
		handler := handlers[rc.HandlerKey()]
		if handler == nil {
			handler = mux.VarsHandler()
		}

		if rc.Regexp != "" {
			if _, err := r.HandleRegexp(rc.Regexp, handler); err != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidRoute, i, err)
			}
			continue
		}

		route, err := r.Handle(rc.Mask, handler)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidRoute, i, err)
		}

		if rc.Name != "" {
			if err := route.Name(rc.Name).GetError(); err != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidRoute, i, err)
			}
		}
	}

	return r, nil
}

// Register builds the table and adds it to parent as a nested router.
func (c *Config) Register(parent *mux.Router, handlers map[string]http.Handler) (*mux.Router, error) {
	r, err := c.Build(handlers)
	if err != nil {
		return nil, err
	}

	parent.Add(r)

	return r, nil
}
