// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   int64
		wantOK bool
	}{
		{"set", WithUserID(context.Background(), 42), 42, true},
		{"missing", context.Background(), 0, false},
		{"wrong type", context.WithValue(context.Background(), UserIDCtxKey, "42"), 0, false},
		{"zero", WithUserID(context.Background(), 0), 0, false},
		{"plain string key", context.WithValue(context.Background(), "userID", int64(42)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTraceIDContext(t *testing.T) {
	assert.Empty(t, GetTraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", GetTraceIDFromContext(WithTraceID(context.Background(), "abc")))
}
