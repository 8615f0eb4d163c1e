// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func newTestTagService(t *testing.T) (TagService, *mock.MockTagRepository) {
	t.Helper()
	tags := mock.NewMockTagRepository(gomock.NewController(t))
	return NewTagService(tags, newTestProtocol[models.Tag](t, "tags"), logger.Nop()), tags
}

func TestTagService_Create_TrimsName(t *testing.T) {
	svc, tags := newTestTagService(t)
	ctx := context.Background()

	tags.EXPECT().
		CreateTag(ctx, models.Tag{UserID: 7, Name: "work"}).
		Return(models.Tag{ID: 1, UserID: 7, Name: "work"}, nil)

	got, err := svc.Create(ctx, models.TagCreate{UserID: 7, Name: "  work "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestTagService_Create_Duplicate(t *testing.T) {
	svc, tags := newTestTagService(t)

	tags.EXPECT().CreateTag(gomock.Any(), gomock.Any()).Return(models.Tag{}, store.ErrAlreadyExists)

	_, err := svc.Create(context.Background(), models.TagCreate{UserID: 7, Name: "work"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestTagService_Rename(t *testing.T) {
	svc, tags := newTestTagService(t)
	ctx := context.Background()

	tags.EXPECT().
		RenameTag(ctx, models.Tag{ID: 5, UserID: 7, Name: "home"}).
		Return(models.Tag{}, store.ErrTagNotFound)

	_, err := svc.Rename(ctx, models.TagPatch{ID: 5, UserID: 7, Name: "home"})
	require.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestTagService_Delete(t *testing.T) {
	svc, tags := newTestTagService(t)
	ctx := context.Background()

	tags.EXPECT().DeleteTags(ctx, int64(7), []int64{5}).Return(int64(1), nil)

	deleted, err := svc.Delete(ctx, models.DeleteRequest{UserID: 7, IDs: []int64{5}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestTagService_Sync_DataOutsideToken(t *testing.T) {
	svc, tags := newTestTagService(t)
	ctx := context.Background()

	tags.EXPECT().
		FindMatching(ctx, int64(7), syncer.Condition[int64]{Search: map[string]string{"name": "wo"}}).
		Return([]syncer.Match[int64]{{ID: 1, LastModified: time.Now()}}, nil)

	list, err := svc.Sync(ctx, 7, models.SyncRequest{
		Sync:   models.SyncParams{Mode: models.SyncModeList},
		Search: map[string]string{"name": "wo"},
	})
	require.NoError(t, err)
	require.Len(t, list.List.Hashes, 1)

	_, err = svc.Sync(ctx, 7, models.SyncRequest{
		Sync: models.SyncParams{Mode: models.SyncModeData, IDs: []int64{1, 2}, Validation: list.List.Validation},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[2]")
}

func TestTagService_Sync_MissingRecords(t *testing.T) {
	svc, tags := newTestTagService(t)
	ctx := context.Background()

	tags.EXPECT().
		FindMatching(ctx, int64(7), gomock.Any()).
		Return([]syncer.Match[int64]{{ID: 1, LastModified: time.Now()}, {ID: 2, LastModified: time.Now()}}, nil)
	tags.EXPECT().
		FindFullByIDs(ctx, int64(7), []int64{1, 2}).
		Return([]models.Tag{{ID: 1}}, nil)

	list, err := svc.Sync(ctx, 7, models.SyncRequest{Sync: models.SyncParams{Mode: models.SyncModeList}})
	require.NoError(t, err)

	_, err = svc.Sync(ctx, 7, models.SyncRequest{
		Sync: models.SyncParams{Mode: models.SyncModeData, IDs: []int64{1, 2}, Validation: list.List.Validation},
	})
	require.ErrorIs(t, err, syncer.ErrMissingRecords)
}
