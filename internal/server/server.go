package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/honeycarbs/ats-adapter/internal/config"
	"github.com/honeycarbs/ats-adapter/internal/handlers"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

// Server is the local development shim: it exposes the handlers over plain HTTP
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the HTTP shim. mcpHandler is mounted at /mcp/stream when non-nil.
func NewServer(log *logging.Logger, cfg config.Config, h *handlers.Handlers, mcpHandler http.Handler) *Server {
	s := &Server{
		logger: log.Named("server"),
		config: cfg,
	}

	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           s.routes(h, mcpHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr is the configured listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP shim listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP shim")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP shim shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP shim shutdown complete")
	return nil
}
