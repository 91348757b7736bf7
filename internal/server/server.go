// Package server exposes the application over a REST-style JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/app"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/config"
)

// Server wires the application services to the HTTP surface.
type Server struct {
	app        *app.App
	cfg        *config.Config
	log        *slog.Logger
	httpServer *http.Server
}

// New creates the server with all routes registered.
func New(application *app.App, cfg *config.Config, log *slog.Logger) (*Server, error) {
	if application == nil {
		return nil, errors.New("app is required")
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{app: application, cfg: cfg, log: log}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/expedientes", func(r chi.Router) {
			r.Get("/", s.listExpedientes)
			r.Post("/", s.createExpediente)
			r.Get("/codigo/{codigo}", s.getExpedientePorCodigo)
			r.Get("/{id}", s.getExpediente)
			r.Get("/{id}/tareas", s.listTareasDeExpediente)
			r.Get("/{id}/partes", s.listPartesDeExpediente)
			r.Patch("/{id}", s.updateExpediente)
			r.Delete("/{id}", s.deleteExpediente)
		})

		r.Route("/tareas", func(r chi.Router) {
			r.Get("/", s.listTareas)
			r.Post("/", s.createTarea)
			r.Patch("/{id}", s.updateTarea)
			r.Delete("/{id}", s.deleteTarea)
		})

		r.Route("/partes", func(r chi.Router) {
			r.Get("/", s.listPartes)
			r.Post("/", s.createParte)
			r.Patch("/{id}", s.updateParte)
			r.Delete("/{id}", s.deleteParte)
		})

		r.Route("/agenda", func(r chi.Router) {
			r.Get("/", s.getSemana)
			r.Post("/", s.createBloque)
			r.Patch("/{id}", s.updateBloque)
			r.Delete("/{id}", s.deleteBloque)
		})

		r.Route("/resumen", func(r chi.Router) {
			r.Get("/", s.getResumen)
			r.Get("/texto", s.getResumenTexto)
		})
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler exposes the router, used by httptest in the package tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("servidor escuchando", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// logRequests logs method, path, status and duration per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
