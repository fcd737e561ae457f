// Package routes configures which routes of the background server are
// installed and which middleware they use.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// All matches every route in Disable and Middleware.
var All = route("all", "*", "*")

// Background routes
var (
	Generate = route("generate", http.MethodGet, "/")
	Formats  = route("formats", http.MethodGet, "/formats")
)

var named = map[string]Route{
	All.Name:      All,
	Generate.Name: Generate,
	Formats.Name:  Formats,
}

// Route is an installable route of the background server.
type Route struct {
	Name   string
	Method string
	Path   string
}

func (r Route) String() string {
	return fmt.Sprintf("%s (%s %s)", r.Name, r.Method, r.Path)
}

// Routes is the route configuration of a server.
type Routes struct {
	disabled   []Route
	middleware map[Route][]func(http.Handler) http.Handler
}

type Option func(*Routes)

// Disable returns an Option that disables the given routes. Disabling All
// disables every route.
func Disable(routes ...Route) Option {
	return func(r *Routes) {
		r.disabled = append(r.disabled, routes...)
	}
}

// Middleware returns an Option that adds middleware to a route. Middleware
// added to All applies to every route.
func Middleware(route Route, middleware ...func(http.Handler) http.Handler) Option {
	return func(r *Routes) {
		r.middleware[route] = append(r.middleware[route], middleware...)
	}
}

// Lookup returns the routes with the given names ("generate", "formats" or
// "all"). Names are case-insensitive.
func Lookup(names ...string) ([]Route, error) {
	out := make([]Route, 0, len(names))
	for _, name := range names {
		r, ok := named[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown route %q", name)
		}
		out = append(out, r)
	}
	return out, nil
}

func New(opts ...Option) Routes {
	r := Routes{middleware: make(map[Route][]func(http.Handler) http.Handler)}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Routes) Disabled(route Route) bool {
	for _, d := range r.disabled {
		if route == d || d == All {
			return true
		}
	}
	return false
}

// Middleware returns the middleware of route, starting with the middleware
// of All.
func (r Routes) Middleware(route Route) []func(http.Handler) http.Handler {
	var out []func(http.Handler) http.Handler
	out = append(out, r.middleware[All]...)
	return append(out, r.middleware[route]...)
}

// Install mounts h at route unless route is disabled.
func (r Routes) Install(router chi.Router, route Route, h http.Handler) {
	if !r.Disabled(route) {
		router.With(r.Middleware(route)...).Method(route.Method, route.Path, h)
	}
}

func route(name, method, path string) Route {
	return Route{Name: name, Method: method, Path: path}
}
