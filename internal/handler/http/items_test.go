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

	"github.com/MKhiriev/go-sync-keeper/internal/relation"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestCreateItem(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.items.EXPECT().
		Create(gomock.Any(), models.ItemCreate{
			UserID:  testUserID,
			Name:    "note",
			Content: "body",
			Tags:    []models.RelationPatch{{ID: 2, Mode: models.RelationAdd}},
		}).
		Return(models.Item{ID: 11, Name: "note", Content: "body", Tags: []models.Tag{{ID: 2, Name: "work"}}}, nil)

	rr := serve(h, newAuthedRequest(http.MethodPost, "/api/items/",
		`{"name":"note","content":"body","tags":[{"id":2,"mode":"Add"}]}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, []int64{2}, got.TagIDs())
}

func TestCreateItem_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, newRequest(http.MethodPost, "/api/items/", `{"name":"note"}`))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPatchItem(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()

	name := "renamed"
	m.items.EXPECT().
		Patch(gomock.Any(), models.ItemPatch{
			ID:     3,
			UserID: testUserID,
			Name:   &name,
			Tags:   []models.RelationPatch{{ID: 1, Mode: models.RelationDelete}},
		}).
		Return(models.Item{ID: 3, Name: name}, nil)

	rr := serve(h, newAuthedRequest(http.MethodPatch, "/api/items/3",
		`{"name":"renamed","tags":[{"id":1,"mode":"Delete"}]}`))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"renamed"`)
}

func TestPatchItem_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", store.ErrItemNotFound, http.StatusNotFound},
		{"invalid mode", &relation.PatchError{Err: relation.ErrInvalidMode, ParentID: 3, ChildID: 1, Mode: "Toggle"}, http.StatusBadRequest},
		{"conflicting", &relation.PatchError{Err: relation.ErrConflictingInstruction, ParentID: 3, ChildID: 1}, http.StatusBadRequest},
		{"duplicate", &relation.PatchError{Err: relation.ErrDuplicateRelation, ParentID: 3, ChildID: 1}, http.StatusConflict},
		{"missing", &relation.PatchError{Err: relation.ErrMissingRelation, ParentID: 3, ChildID: 1}, http.StatusUnprocessableEntity},
		{"unknown tags", fmt.Errorf("%w: [9]", service.ErrUnknownTags), http.StatusUnprocessableEntity},
		{"related gone", fmt.Errorf("item update failed: %w", store.ErrRelatedNotFound), http.StatusUnprocessableEntity},
		{"validation", fmt.Errorf("%w: no fields", service.ErrInvalidDataProvided), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuth()
			m.items.EXPECT().Patch(gomock.Any(), gomock.Any()).Return(models.Item{}, tt.err)

			rr := serve(h, newAuthedRequest(http.MethodPatch, "/api/items/3", `{"name":"x"}`))
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.err.Error(), decodeError(t, rr).Error)
		})
	}
}

func TestPatchItem_RelationErrorNamesParentAndChild(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.items.EXPECT().Patch(gomock.Any(), gomock.Any()).
		Return(models.Item{}, &relation.PatchError{Err: relation.ErrMissingRelation, ParentID: 3, ChildID: 8})

	rr := serve(h, newAuthedRequest(http.MethodPatch, "/api/items/3", `{"tags":[{"id":8,"mode":"Delete"}]}`))

	msg := decodeError(t, rr).Error
	assert.Contains(t, msg, "parent 3")
	assert.Contains(t, msg, "child 8")
}

func TestPatchItem_InvalidPathID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4"} {
		t.Run(id, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuth()

			rr := serve(h, newAuthedRequest(http.MethodPatch, "/api/items/"+id, `{"name":"x"}`))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestDeleteItems(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.items.EXPECT().
		Delete(gomock.Any(), models.DeleteRequest{UserID: testUserID, IDs: []int64{1, 2}}).
		Return(int64(2), nil)

	rr := serve(h, newAuthedRequest(http.MethodDelete, "/api/items/", `{"ids":[1,2]}`))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted":2}`, rr.Body.String())
}

func TestDeleteItems_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()

	rr := serve(h, newAuthedRequest(http.MethodDelete, "/api/items/", `{"ids":"x"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
