// Package server exposes the rendering pipeline over HTTP.
//
// Routes:
//
//	POST /v1/render?format=svg|png|pdf|json&theme=name&chart=name
//	POST /v1/layout?theme=name&chart=name
//	GET  /healthz
//
// Request bodies are chart documents in JSON, or YAML when the Content-Type
// says so. Errors are returned as {"error": {"code": ..., "message": ...}}
// with a status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/pipeline"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

// PaletteFunc resolves a theme name to its token table.
type PaletteFunc func(name string) (theme.Table, error)

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithPalettes resolves themes through fn instead of the builtin tables.
func WithPalettes(fn PaletteFunc) Option { return func(s *Server) { s.palettes = fn } }

// WithLabelOptions sets the placement parameters used for every request.
func WithLabelOptions(o label.Options) Option { return func(s *Server) { s.label = o } }

// WithMaxBodyBytes limits request bodies. The default is 1 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithTimeout bounds each request. The default is 30s.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Server serves chart renders.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	palettes PaletteFunc
	label    label.Options
	maxBody  int64
	timeout  time.Duration
	router   chi.Router
}

// New builds the router around runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		logger:   log.Default(),
		palettes: builtinPalette,
		maxBody:  1 << 20,
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json", "application/yaml", "application/x-yaml", "text/yaml"))
		r.Use(middleware.RequestSize(s.maxBody))
		r.Post("/render", s.handleRender)
		r.Post("/layout", s.handleLayout)
	})
	s.router = r
	return s
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func builtinPalette(name string) (theme.Table, error) {
	o := pipeline.Options{Theme: name}
	if err := o.ValidateForLayout(); err != nil {
		return nil, err
	}
	return o.Palette, nil
}
