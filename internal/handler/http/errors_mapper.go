// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/hasher"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/relation"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncauth"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// errorStatusMap holds no two targets that can share an error chain with
// different statuses.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownTags:             http.StatusUnprocessableEntity,

	relation.ErrInvalidMode:            http.StatusBadRequest,
	relation.ErrConflictingInstruction: http.StatusBadRequest,
	relation.ErrDuplicateRelation:      http.StatusConflict,
	relation.ErrMissingRelation:        http.StatusUnprocessableEntity,

	syncauth.ErrInvalidToken:    http.StatusForbidden,
	syncauth.ErrUnauthorizedIDs: http.StatusForbidden,
	syncauth.ErrSigning:         http.StatusInternalServerError,

	syncer.ErrInvalidMode:    http.StatusBadRequest,
	syncer.ErrMissingRecords: http.StatusConflict,

	hasher.ErrUnhashable: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusUnauthorized,
	store.ErrItemNotFound:       http.StatusNotFound,
	store.ErrTagNotFound:        http.StatusNotFound,
	store.ErrAlreadyExists:      http.StatusConflict,
	store.ErrRelatedNotFound:    http.StatusUnprocessableEntity,
	store.ErrUnsupportedSearch:  http.StatusBadRequest,

	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidPathID: http.StatusBadRequest,
	ErrNoUserID:      http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Client
// errors carry the error text; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, r, message, status)
}
