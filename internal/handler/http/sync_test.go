// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/syncauth"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestSyncItems_List(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.items.EXPECT().
		Sync(gomock.Any(), testUserID, models.SyncRequest{
			Sync:     models.SyncParams{Mode: models.SyncModeList},
			Search:   map[string]string{"name": "x"},
			Page:     1,
			PageSize: 50,
		}).
		Return(models.SyncResponse[models.Item]{
			List: &models.SyncListResponse{
				Hashes:     []models.SyncHash{{ID: 1, Hash: "00000000000000aa"}},
				Validation: "tok",
			},
		}, nil)

	rr := serve(h, newAuthedRequest(http.MethodPost, "/api/items/sync",
		`{"sync":{"mode":"List"},"search":{"name":"x"},"page":1,"page_size":50}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"hashes":[{"id":1,"hash":"00000000000000aa"}],"validation":"tok"}`, rr.Body.String())
}

func TestSyncItems_Data(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.items.EXPECT().
		Sync(gomock.Any(), testUserID, models.SyncRequest{
			Sync: models.SyncParams{Mode: models.SyncModeData, IDs: []int64{2}, Validation: "tok"},
		}).
		Return(models.SyncResponse[models.Item]{
			Data: &models.SyncDataResponse[models.Item]{
				Data: map[int64]models.Item{2: {ID: 2, Name: "two", Tags: []models.Tag{}}},
			},
		}, nil)

	rr := serve(h, newAuthedRequest(http.MethodPost, "/api/items/sync",
		`{"sync":{"mode":"Data","ids":[2],"validation":"tok"}}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.SyncDataResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Contains(t, got.Data, int64(2))
	assert.JSONEq(t, `{"id":2,"name":"two","content":"","tags":[]}`, string(got.Data[2]))
}

func TestSyncTags_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"forged token", fmt.Errorf("%w: signature is invalid", syncauth.ErrInvalidToken), http.StatusForbidden},
		{"ids outside token", &syncauth.UnauthorizedIDsError{IDs: []any{int64(3)}}, http.StatusForbidden},
		{"records gone", fmt.Errorf("%w: [3]", syncer.ErrMissingRecords), http.StatusConflict},
		{"invalid mode", fmt.Errorf("%w: %q", syncer.ErrInvalidMode, "Push"), http.StatusBadRequest},
		{"signing failure", fmt.Errorf("%w: boom", syncauth.ErrSigning), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuth()
			m.tags.EXPECT().Sync(gomock.Any(), testUserID, gomock.Any()).
				Return(models.SyncResponse[models.Tag]{}, tt.err)

			rr := serve(h, newAuthedRequest(http.MethodPost, "/api/tags/sync",
				`{"sync":{"mode":"Data","ids":[3],"validation":"tok"}}`))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSync_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()

	rr := serve(h, newAuthedRequest(http.MethodPost, "/api/tags/sync", `{"sync":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
