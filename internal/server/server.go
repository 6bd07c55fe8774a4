// Package server exposes the sequence engine over HTTP. It serves a small
// JSON API together with health, metrics, and hardened response headers.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/seqcalc/internal/logging"
)

const (
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout = 5 * time.Second
	// ShutdownTimeout bounds graceful shutdown once the context is canceled.
	ShutdownTimeout = 10 * time.Second
)

// Server is the HTTP front end of the sequence engine.
type Server struct {
	addr     string
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
}

// New creates a Server listening on addr with the default security
// configuration.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
	}
}

// Routes builds the HTTP mux of the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/sequence", SecurityMiddleware(s.security, s.handleSequence))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.handleHealth))
	mux.HandleFunc("/metrics", s.metrics.WritePrometheus)
	return mux
}

// Run starts the server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", s.addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
