// Package server runs an http.Handler until it is shut down.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Server wraps an HTTP listener with a once-only Run and a graceful Shutdown
type Server struct {
	name   string
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

func New(name, addr string, handler http.Handler, log *logging.Logger) *Server {
	return &Server{
		name:   name,
		logger: log.With("server", name),
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Name() string {
	return s.name
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("shutdown with error", "err", err)
		return err
	}

	s.logger.Info("shutdown complete")
	return nil
}
