// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

func TestSyncCacheRepository_Hashes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncCacheRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectCachedHashes)).
		WithArgs("items").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hash"}).
			AddRow(int64(1), "aaaa").
			AddRow(int64(2), "bbbb"))

	hashes, err := repo.Hashes(context.Background(), "items")
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "aaaa", 2: "bbbb"}, hashes)
}

func TestSyncCacheRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncCacheRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectCachedRecord)).
		WithArgs("tags", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hash", "payload"}).
			AddRow(int64(5), "cccc", []byte(`{"id":5}`)))

	rec, err := repo.Get(context.Background(), "tags", 5)
	require.NoError(t, err)
	assert.Equal(t, "cccc", rec.Hash)
	assert.JSONEq(t, `{"id":5}`, string(rec.Payload))
}

func TestSyncCacheRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncCacheRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectCachedRecord)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hash", "payload"}))

	_, err := repo.Get(context.Background(), "tags", 5)
	assert.ErrorIs(t, err, ErrCacheRecordNotFound)
}

func TestSyncCacheRepository_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncCacheRepository(db, logger.Nop())

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO synced_records"))
	prep.ExpectExec().
		WithArgs("items", int64(1), "aaaa", []byte(`{"id":1}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("items", int64(2), "bbbb", []byte(`{"id":2}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Upsert(context.Background(), "items",
		CachedRecord{ID: 1, Hash: "aaaa", Payload: json.RawMessage(`{"id":1}`)},
		CachedRecord{ID: 2, Hash: "bbbb", Payload: json.RawMessage(`{"id":2}`)},
	)
	require.NoError(t, err)
}

func TestSyncCacheRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncCacheRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM synced_records WHERE entity = ? AND id IN (?,?)")).
		WithArgs("items", int64(3), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Delete(context.Background(), "items", []int64{3, 4}))
	require.NoError(t, repo.Delete(context.Background(), "items", nil))
}
