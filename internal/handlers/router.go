package handlers

import (
	"context"
	"fmt"

	"kalaa-saarathi-api/pkg/lambda"
)

// Route binds a path to its handler. The methods a route advertises live in
// its CORS policy; no method is ever rejected.
type Route struct {
	Name    string
	Path    string
	CORS    *CORSPolicy
	Handler lambda.HandlerFunc
}

// Serve runs the route handler, behind its CORS policy when it has one
func (r Route) Serve(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return r.handler()(ctx, req)
}

func (r Route) handler() lambda.HandlerFunc {
	if r.CORS == nil {
		return r.Handler
	}
	return WithCORS(*r.CORS, r.Handler)
}

// Router dispatches requests to routes by exact path match
type Router struct {
	routes []Route
	byPath map[string]lambda.HandlerFunc
	byName map[string]Route
}

// NewRouter builds a router from an explicit route table
func NewRouter(routes ...Route) (*Router, error) {
	r := &Router{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]lambda.HandlerFunc, len(routes)),
		byName: make(map[string]Route, len(routes)),
	}

	for _, route := range routes {
		if route.Handler == nil {
			return nil, fmt.Errorf("route %q has no handler", route.Name)
		}
		if _, exists := r.byPath[route.Path]; exists {
			return nil, fmt.Errorf("duplicate route path %q", route.Path)
		}
		if _, exists := r.byName[route.Name]; exists {
			return nil, fmt.Errorf("duplicate route name %q", route.Name)
		}

		r.routes = append(r.routes, route)
		r.byPath[route.Path] = route.handler()
		r.byName[route.Name] = route
	}

	return r, nil
}

// Dispatch serves the route whose path equals the request path, or NotFound
func (r *Router) Dispatch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	path := req.Path
	if path == "" {
		path = "/"
	}

	if h, ok := r.byPath[path]; ok {
		return h(ctx, req)
	}
	return NotFound(ctx, req)
}

// Route looks up a route by name
func (r *Router) Route(name string) (Route, bool) {
	route, ok := r.byName[name]
	return route, ok
}

// Routes returns the route table in registration order
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}
