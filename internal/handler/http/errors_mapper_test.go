// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sync-keeper/internal/hasher"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unhashable", &hasher.HashingError{Type: "chan int", Reason: "unsupported kind chan"}, http.StatusBadRequest},
		{"unsupported search through data source", fmt.Errorf("%w: %w", syncer.ErrDataSource, store.ErrUnsupportedSearch), http.StatusBadRequest},
		{"query failure through data source", fmt.Errorf("%w: %w", syncer.ErrDataSource, store.ErrExecutingQuery), http.StatusInternalServerError},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"no user", ErrNoUserID, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
