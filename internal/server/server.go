// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/handler"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until the process receives a stop signal.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// gRPC first so that health checks see NOT_SERVING while HTTP drains.
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	var wg sync.WaitGroup
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		wg.Go(s.gRPCServer.RunServer)
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
