// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CachedRecord is one synchronized record kept by the client.
type CachedRecord struct {
	ID      int64
	Hash    string
	Payload json.RawMessage
}

// SyncCacheRepository is the client-side store of synchronized records,
// keyed by entity name and id.
type SyncCacheRepository interface {
	// Hashes returns id -> hash of every cached record of entity.
	Hashes(ctx context.Context, entity string) (map[int64]string, error)

	// Get returns one cached record or ErrCacheRecordNotFound.
	Get(ctx context.Context, entity string, id int64) (CachedRecord, error)

	// Upsert stores records, replacing cached ones with the same id.
	Upsert(ctx context.Context, entity string, records ...CachedRecord) error

	// Delete drops the cached records of entity among ids.
	Delete(ctx context.Context, entity string, ids []int64) error
}
