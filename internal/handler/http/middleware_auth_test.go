// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m testServices)
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "valid token",
			header:     "Bearer " + testToken,
			setup:      func(m testServices) { m.expectAuth() },
			wantStatus: http.StatusOK,
			wantUserID: testUserID,
		},
		{
			name:       "lowercase scheme",
			header:     "bearer " + testToken,
			setup:      func(m testServices) { m.expectAuth() },
			wantStatus: http.StatusOK,
			wantUserID: testUserID,
		},
		{
			name:       "missing header",
			setup:      func(testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setup:      func(testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no token",
			header:     "Bearer",
			setup:      func(testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m testServices) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}
