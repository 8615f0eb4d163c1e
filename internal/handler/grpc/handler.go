// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service for the sync server.
package grpc

import (
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Per-entity sync services reported next to the overall ("") status.
const (
	ItemsSyncService = "gosynckeeper.ItemsSync"
	TagsSyncService  = "gosynckeeper.TagsSync"
)

var reportedServices = []string{"", ItemsSyncService, TagsSyncService}

// Handler owns the health state of the server processes.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a Handler whose services all report NOT_SERVING until
// SetServing is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips every reported service between SERVING and NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	for _, name := range reportedServices {
		h.health.SetServingStatus(name, status)
	}
	h.logger.Info().Str("status", status.String()).Msg("health status changed")
}

// Shutdown marks everything NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
