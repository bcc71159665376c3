// Package server exposes the verification pipeline over HTTP with request
// logging and Prometheus metrics. Results are returned to the caller and
// never persisted.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
)

// Config holds HTTP server settings.
type Config struct {
	Host            string
	Port            int
	MaxUploadMB     int64
	TimeoutSec      int
	ShutdownTimeout int
}

// DefaultConfig returns default server settings.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            8080,
		MaxUploadMB:     20,
		TimeoutSec:      60,
		ShutdownTimeout: 10,
	}
}

// Server serves verification requests over HTTP.
type Server struct {
	cfg        Config
	pipeline   *pipeline.Pipeline
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a server around an assembled pipeline.
func New(cfg Config, pl *pipeline.Pipeline, logger *slog.Logger) (*Server, error) {
	if pl == nil {
		return nil, fmt.Errorf("pipeline must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, pipeline: pl, logger: logger}

	mux := http.NewServeMux()
	s.SetupRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.TimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.TimeoutSec) * time.Second,
	}
	return s, nil
}

// SetupRoutes registers all HTTP routes on the mux.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/verify", s.loggingMiddleware(s.verifyHandler))
	mux.HandleFunc("/health", s.loggingMiddleware(s.healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start runs the server until the context is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return <-errCh
}
