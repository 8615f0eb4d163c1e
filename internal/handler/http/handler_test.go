// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	testToken  = "good-token"
	testUserID = int64(7)
)

type testServices struct {
	auth    *mock.MockAuthService
	items   *mock.MockItemService
	tags    *mock.MockTagService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		items:   mock.NewMockItemService(ctrl),
		tags:    mock.NewMockTagService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		ItemService:    mocks.items,
		TagService:     mocks.tags,
		AppInfoService: mocks.appInfo,
	}, logger.Nop())
	return h, mocks
}

// expectAuth lets one request through the auth middleware as testUserID.
func (m testServices) expectAuth() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID}, nil)
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

func newAuthedRequest(method, target, body string) *http.Request {
	req := newRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var er utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &er))
	return er
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.NotSame(t, h, NewHandler(svc, log))
}
