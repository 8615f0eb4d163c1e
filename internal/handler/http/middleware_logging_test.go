// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: log}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/items/?x=1", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/api/items/?x=1", line["uri"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.Contains(t, line, "duration")
}
