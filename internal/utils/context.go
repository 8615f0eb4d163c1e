// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport and service
// layers: request-scoped context values, JSON responses, the resty client,
// JWT helpers and id generation.
package utils

import (
	"context"
)

// contextKey keeps our context keys from colliding with string keys set by
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// TraceIDCtxKey holds the request trace id (string).
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the authenticated user id stored by the auth
// middleware. ok is false when the value is missing, has the wrong type or
// is not positive.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
