// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// serveSync decodes a sync request, runs it for the authenticated user and
// writes the List or Data body.
func serveSync[E any](w http.ResponseWriter, r *http.Request, entity models.SyncEntity, sync func(context.Context, int64, models.SyncRequest) (models.SyncResponse[E], error)) {
	uid, err := userID(r)
	if err != nil {
		writeServiceError(w, r, err, "sync without user")
		return
	}

	var req models.SyncRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid sync request")
		return
	}

	res, err := sync(r.Context(), uid, req)
	if err != nil {
		writeServiceError(w, r, err, "sync failed")
		return
	}

	logger.FromRequest(r).Debug().
		Str("entity", string(entity)).
		Str("mode", string(req.Sync.Mode)).
		Int64("user_id", uid).
		Msg("sync served")
	_, _ = utils.WriteJSON(w, res.Body(), http.StatusOK)
}

func (h *Handler) syncItems(w http.ResponseWriter, r *http.Request) {
	serveSync(w, r, models.SyncEntityItems, h.services.ItemService.Sync)
}

func (h *Handler) syncTags(w http.ResponseWriter, r *http.Request) {
	serveSync(w, r, models.SyncEntityTags, h.services.TagService.Sync)
}
