// Package server runs the vault's HTTP transport: startup, signal
// handling, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server is the lifecycle contract of the transport server. RunServer
// blocks until shutdown is requested; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds the HTTP server around the router.
func NewServer(router *chi.Mux, cfg config.HTTPServerConfig, log *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: &http.Server{
			Addr:    cfg.Address,
			Handler: router,
		},
		logger: log,
	}, nil
}

// RunServer serves until SIGINT, SIGTERM, or SIGQUIT arrives, then drains
// in-flight requests before returning.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
