// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
)

type server struct {
	servers         []*httpServer
	shutdownTimeout time.Duration

	mu        sync.Mutex
	listeners map[*httpServer]net.Listener

	logger *logger.Logger
}

// NewServer creates the application listener on cfg.HTTPAddress and, when
// both metrics and cfg.MetricsAddress are set, the metrics listener.
func NewServer(app, metrics http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		listeners:       make(map[*httpServer]net.Listener),
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && app != nil {
		s.servers = append(s.servers, newHTTPServer("http", cfg.HTTPAddress, app, cfg))
	}
	if cfg.MetricsAddress != "" && metrics != nil {
		s.servers = append(s.servers, newHTTPServer("metrics", cfg.MetricsAddress, metrics, cfg))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// bind every listener first so an address clash fails before serving
	listeners := make([]net.Listener, 0, len(s.servers))
	for _, srv := range s.servers {
		l, err := net.Listen("tcp", srv.server.Addr)
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return err
		}
		listeners = append(listeners, l)
	}

	s.mu.Lock()
	for i, srv := range s.servers {
		s.listeners[srv] = listeners[i]
	}
	s.mu.Unlock()

	errCh := make(chan error, len(s.servers))
	for i, srv := range s.servers {
		s.logger.Info().Str("server", srv.name).Str("address", listeners[i].Addr().String()).Msg("launching server")
		go func(srv *httpServer, l net.Listener) {
			errCh <- srv.serve(l)
		}(srv, listeners[i])
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// addr returns the bound address of the named listener, for tests binding
// to port 0.
func (s *server) addr(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for srv, l := range s.listeners {
		if srv.name == name {
			return l.Addr().String()
		}
	}
	return ""
}
