// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/workers"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ClientAuthService authenticates the client against the server. A
// successful call leaves the session token in the server adapter.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error
}

// ClientSyncService mirrors the server collections into the local cache.
type ClientSyncService interface {
	// Sync runs one List call for entity, fetches every record whose hash
	// differs from the cached one and drops cached records the server no
	// longer lists.
	Sync(ctx context.Context, entity models.SyncEntity) (models.SyncReport, error)

	// SyncAll calls Sync for every entity in [models.SyncEntities].
	SyncAll(ctx context.Context) error
}

// ClientSyncJob runs SyncAll periodically in the background.
type ClientSyncJob interface {
	workers.Worker
}
