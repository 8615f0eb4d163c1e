// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
		{http.MethodGet, "/api/version/"},
		{http.MethodPost, "/api/items/sync"},
		{http.MethodPost, "/api/items/"},
		{http.MethodPatch, "/api/items/5"},
		{http.MethodDelete, "/api/items/"},
		{http.MethodPost, "/api/tags/sync"},
		{http.MethodPost, "/api/tags/"},
		{http.MethodPatch, "/api/tags/5"},
		{http.MethodDelete, "/api/tags/"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			assert.True(t, router.Match(chi.NewRouteContext(), route.method, route.path))
		})
	}
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/api/items/sync", "/api/tags/sync", "/api/items/", "/api/tags/"} {
		rr := serve(h, newRequest(http.MethodPost, path, `{}`))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	rr := serve(h, newRequest(http.MethodGet, "/api/version/", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/user/login"},
		{http.MethodPut, "/api/items/sync"},
		{http.MethodGet, "/api/tags/5"},
	} {
		rr := serve(h, newRequest(tc.method, tc.path, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code, tc.method+" "+tc.path)
	}
}
