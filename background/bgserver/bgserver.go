// Package bgserver serves generated background images over HTTP.
package bgserver

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modernice/faux/background"
	"github.com/modernice/faux/background/bgserver/routes"
	"github.com/modernice/faux/internal/api"
)

// Server is the background image server. Images are generated from the query
// parameters of "GET /":
//
//	GET /?imgType=png&bgColor=f0c&bgWidth=100&bgHeight=50&bdLoc=top&bdColor=000&bdSize=5
//
// Every failed request gets a 404 response, whatever the cause.
type Server struct {
	router chi.Router

	svc    *background.Service
	log    *slog.Logger
	routes []routes.Option
}

// Option is a server option.
type Option func(*Server)

// WithLogger returns an Option that sets the logger. Failed requests are
// logged at warn level, generated images at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithRoutes returns an Option that configures the installed routes.
func WithRoutes(opts ...routes.Option) Option {
	return func(s *Server) {
		s.routes = append(s.routes, opts...)
	}
}

// New returns the background image server.
func New(svc *background.Service, opts ...Option) *Server {
	s := Server{
		router: chi.NewRouter(),
		svc:    svc,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.init()
	return &s
}

func (s *Server) init() {
	s.router.Use(middleware.RequestID, middleware.Recoverer)
	s.router.NotFound(api.NotFound)
	s.router.MethodNotAllowed(api.NotFound)

	r := routes.New(s.routes...)
	r.Install(s.router, routes.Generate, http.HandlerFunc(s.generate))
	r.Install(s.router, routes.Formats, http.HandlerFunc(s.formats))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	img, err := s.svc.Generate(r.Context(), background.ParseQuery(r.URL.Query()))
	if err != nil {
		s.log.Warn(
			"generate background image",
			"kind", background.Kind(err),
			"error", err,
			"query", r.URL.RawQuery,
			"request_id", middleware.GetReqID(r.Context()),
		)
		api.NotFound(w, r)
		return
	}

	s.log.Debug(
		"generated background image",
		"format", img.Request.Format,
		"width", img.Request.Width,
		"height", img.Request.Height,
		"border", img.Request.HasBorder(),
		"bytes", len(img.Data),
		"path", img.Path,
		"request_id", middleware.GetReqID(r.Context()),
	)

	api.Image(w, img.ContentType, img.Data)
}

func (s *Server) formats(w http.ResponseWriter, r *http.Request) {
	var resp struct {
		Formats []string `json:"formats"`
		Limits  struct {
			Width  int `json:"width"`
			Height int `json:"height"`
			Border int `json:"border"`
		} `json:"limits"`
	}

	limits := s.svc.Limits()
	resp.Formats = s.svc.Formats()
	resp.Limits.Width = limits.WidthDigits
	resp.Limits.Height = limits.HeightDigits
	resp.Limits.Border = limits.BorderDigits

	api.JSON(w, r, http.StatusOK, resp)
}
