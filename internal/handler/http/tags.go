// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "tag creation without user")
		return
	}

	var req models.TagCreate
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid tag")
		return
	}
	req.UserID = uid

	tag, err := h.services.TagService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "tag creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) renameTag(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "tag rename without user")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid tag id")
		return
	}

	var req models.TagPatch
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid tag patch")
		return
	}
	req.ID, req.UserID = id, uid

	tag, err := h.services.TagService.Rename(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "tag rename failed")
		return
	}

	_, _ = utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTags(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "tag deletion without user")
		return
	}

	var req models.DeleteRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid tag deletion")
		return
	}
	req.UserID = uid

	deleted, err := h.services.TagService.Delete(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "tag deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, deleteResponse{Deleted: deleted}, http.StatusOK)
}
