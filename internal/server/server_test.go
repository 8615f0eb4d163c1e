// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/handler"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func healthStatus(ctx context.Context, addr string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := newTestServer(t, testConfig())
	httpAddr := srv.httpServer.Addr()
	grpcAddr := srv.gRPCServer.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	assert.Eventually(t, func() bool {
		status, err := healthStatus(context.Background(), grpcAddr)
		return err == nil && status == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get("http://" + httpAddr + "/unknown")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + httpAddr + "/unknown")
	assert.Error(t, err)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	cfg := testConfig()
	cfg.GRPCAddress = ""

	srv := newTestServer(t, cfg)
	t.Cleanup(srv.Shutdown)

	assert.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, testConfig(), logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testConfig()
	cfg.GRPCAddress = busy.Addr().String()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, srv)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
