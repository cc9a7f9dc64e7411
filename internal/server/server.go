// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/handler"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	switch {
	case handlers == nil || handlers.HTTP == nil:
		return nil, errNoHTTPHandler
	case cfg.HTTPAddress == "":
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run blocks until ctx is done and every component has stopped.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.workers != nil {
		s.logger.Info().Msg("Launching workers")
		wg.Go(func() { s.workers.Run(ctx) })
	}

	s.logger.Info().Msg("Launching HTTP server")
	wg.Go(s.httpServer.RunServer)

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
