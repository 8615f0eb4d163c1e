// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-sync-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddress, err)
	}

	var opts []grpc.ServerOption
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	server := grpc.NewServer(opts...)
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server listening")
	g.handler.SetServing(true)
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING first, then drains. Streams still open after
// shutdownTimeout are cut with Stop.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	if g.shutdownTimeout <= 0 {
		g.server.GracefulStop()
		return
	}

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out")
		g.server.Stop()
	}
}
