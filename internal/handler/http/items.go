// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type deleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "item creation without user")
		return
	}

	var req models.ItemCreate
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid item")
		return
	}
	req.UserID = uid

	item, err := h.services.ItemService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "item creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) patchItem(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "item patch without user")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid item id")
		return
	}

	var req models.ItemPatch
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid item patch")
		return
	}
	req.ID, req.UserID = id, uid

	item, err := h.services.ItemService.Patch(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "item patch failed")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItems(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "item deletion without user")
		return
	}

	var req models.DeleteRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid item deletion")
		return
	}
	req.UserID = uid

	deleted, err := h.services.ItemService.Delete(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "item deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, deleteResponse{Deleted: deleted}, http.StatusOK)
}
