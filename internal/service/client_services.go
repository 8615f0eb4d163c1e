// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore.SyncCache, serverAdapter, logger)

	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, cfg.SyncInterval, logger),
	}
}
