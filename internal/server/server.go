// Package server exposes the render pipeline over HTTP.
//
// The preview server accepts wheel manifests, renders them through the
// same pipeline as the CLI, and manages a library of saved wheels. It is
// meant for local preview and small deployments; there is no auth layer.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/soleren/mandala/pkg/pipeline"
	"github.com/soleren/mandala/pkg/store"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Runner executes renders. Required.
	Runner *pipeline.Runner

	// Store holds saved wheels. Nil selects an in-memory store.
	Store store.Store

	// Logger receives request and render logs. Nil means log.Default().
	Logger *log.Logger
}

// Server is the mandala preview server.
type Server struct {
	cfg    Config
	http   *http.Server
	logger *log.Logger
}

// New assembles the router and returns a server ready to listen.
func New(cfg Config) *Server {
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{cfg: cfg, logger: cfg.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/wheels", func(r chi.Router) {
			r.Get("/", s.handleListWheels)
			r.Post("/", s.handleSaveWheel)
			r.Get("/{id}", s.handleGetWheel)
			r.Get("/{id}/render", s.handleRenderWheel)
			r.Delete("/{id}", s.handleDeleteWheel)
		})
	})

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Info("preview server listening", "addr", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.cfg.Store.Close(ctx)
}
