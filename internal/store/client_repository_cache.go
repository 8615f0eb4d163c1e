// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// syncCacheRepository is the SQLite implementation of [SyncCacheRepository].
type syncCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncCacheRepository constructs a [SyncCacheRepository] backed by db.
func NewSyncCacheRepository(db *DB, logger *logger.Logger) SyncCacheRepository {
	return &syncCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// Hashes implements [SyncCacheRepository].
func (r *syncCacheRepository) Hashes(ctx context.Context, entity string) (map[int64]string, error) {
	rows, err := r.DB.QueryContext(ctx, selectCachedHashes, entity)
	if err != nil {
		r.logger.Err(err).Str("func", "syncCacheRepository.Hashes").Str("entity", entity).Msg("failed to query cached hashes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	hashes := make(map[int64]string)
	for rows.Next() {
		var id int64
		var hash string
		if err = rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		hashes[id] = hash
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return hashes, nil
}

// Get implements [SyncCacheRepository].
func (r *syncCacheRepository) Get(ctx context.Context, entity string, id int64) (CachedRecord, error) {
	var rec CachedRecord
	var payload []byte
	err := r.DB.QueryRowContext(ctx, selectCachedRecord, entity, id).Scan(&rec.ID, &rec.Hash, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CachedRecord{}, ErrCacheRecordNotFound
		}
		return CachedRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	rec.Payload = payload

	return rec, nil
}

// Upsert implements [SyncCacheRepository]. All records are written in one
// transaction.
func (r *syncCacheRepository) Upsert(ctx context.Context, entity string, records ...CachedRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertCachedRecord)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err = stmt.ExecContext(ctx, entity, rec.ID, rec.Hash, []byte(rec.Payload)); err != nil {
			r.logger.Err(err).
				Str("func", "syncCacheRepository.Upsert").
				Str("entity", entity).
				Int64("id", rec.ID).
				Msg("failed to upsert cached record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Delete implements [SyncCacheRepository].
func (r *syncCacheRepository) Delete(ctx context.Context, entity string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteCachedQuery(entity, ids)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
