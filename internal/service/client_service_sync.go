// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	// fetchBatchSize bounds the ids of one Data request.
	fetchBatchSize = 100

	// maxSyncAttempts bounds the re-lists after a conflict.
	maxSyncAttempts = 3
)

type clientSyncService struct {
	cache   store.SyncCacheRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientSyncService(cache store.SyncCacheRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{cache: cache, adapter: serverAdapter, logger: logger}
}

// Sync implements [ClientSyncService]. A conflict means records vanished
// between List and Data; the whole round is repeated with a fresh List.
func (s *clientSyncService) Sync(ctx context.Context, entity models.SyncEntity) (models.SyncReport, error) {
	var err error
	for attempt := 1; attempt <= maxSyncAttempts; attempt++ {
		var report models.SyncReport
		report, err = s.syncOnce(ctx, entity)
		if err == nil {
			s.logger.Info().
				Str("entity", string(entity)).
				Int("listed", report.Listed).
				Int("fetched", report.Fetched).
				Int("removed", report.Removed).
				Msg("sync finished")
			return report, nil
		}
		if !errors.Is(err, adapter.ErrConflict) {
			break
		}
		s.logger.Warn().Err(err).Str("entity", string(entity)).Int("attempt", attempt).Msg("server data changed, listing again")
	}

	s.logger.Err(err).Str("entity", string(entity)).Msg("sync failed")
	return models.SyncReport{Entity: entity}, mapAdapterError(err)
}

// SyncAll implements [ClientSyncService]. Entities are synced in order; a
// failing entity does not stop the following ones.
func (s *clientSyncService) SyncAll(ctx context.Context) error {
	var errs []error
	for _, entity := range models.SyncEntities {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.Sync(ctx, entity); err != nil {
			errs = append(errs, fmt.Errorf("sync %s: %w", entity, err))
		}
	}
	return errors.Join(errs...)
}

func (s *clientSyncService) syncOnce(ctx context.Context, entity models.SyncEntity) (models.SyncReport, error) {
	report := models.SyncReport{Entity: entity}

	list, err := s.adapter.ListHashes(ctx, entity, models.SyncRequest{})
	if err != nil {
		return report, fmt.Errorf("list %s: %w", entity, err)
	}
	report.Listed = len(list.Hashes)

	cached, err := s.cache.Hashes(ctx, string(entity))
	if err != nil {
		return report, fmt.Errorf("read cached %s hashes: %w", entity, err)
	}

	listed := make(map[int64]string, len(list.Hashes))
	var stale []int64
	for _, h := range list.Hashes {
		listed[h.ID] = h.Hash
		if cachedHash, ok := cached[h.ID]; !ok || cachedHash != h.Hash {
			stale = append(stale, h.ID)
		}
	}

	for batch := range slices.Chunk(stale, fetchBatchSize) {
		if err = s.fetch(ctx, entity, batch, listed, list.Validation); err != nil {
			return report, err
		}
		report.Fetched += len(batch)
	}

	var gone []int64
	for id := range cached {
		if _, ok := listed[id]; !ok {
			gone = append(gone, id)
		}
	}
	if len(gone) > 0 {
		slices.Sort(gone)
		if err = s.cache.Delete(ctx, string(entity), gone); err != nil {
			return report, fmt.Errorf("drop cached %s: %w", entity, err)
		}
		report.Removed = len(gone)
	}

	return report, nil
}

func (s *clientSyncService) fetch(ctx context.Context, entity models.SyncEntity, ids []int64, hashes map[int64]string, validation string) error {
	data, err := s.adapter.FetchData(ctx, entity, ids, validation)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", entity, err)
	}

	records := make([]store.CachedRecord, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		payload, ok := data[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		records = append(records, store.CachedRecord{ID: id, Hash: hashes[id], Payload: payload})
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s %v", ErrIncompleteSyncData, entity, missing)
	}

	if err = s.cache.Upsert(ctx, string(entity), records...); err != nil {
		return fmt.Errorf("cache %s: %w", entity, err)
	}
	return nil
}
