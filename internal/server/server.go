// Package server exposes the MCQ generator over HTTP: an upload form,
// the generation endpoint, and artifact downloads.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the upload UI and drives the pipeline for each request.
type Server struct {
	pipeline  *pipeline.Pipeline
	config    Config
	logger    *zap.Logger
	templates *template.Template
}

// New creates a Server around an assembled pipeline.
func New(p *pipeline.Pipeline, cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{
		pipeline:  p,
		config:    cfg,
		logger:    logger,
		templates: templates,
	}, nil
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/download/{name}", s.handleDownload)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// Start runs the server until ctx is canceled, then drains in-flight
// requests. No WriteTimeout is set: a generate request legitimately waits
// on the model for minutes.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
