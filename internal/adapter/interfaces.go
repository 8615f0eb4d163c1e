// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the go-sync-keeper server on behalf of the client.
//
// [ServerAdapter] hides the transport from the client services. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty; non-2xx
// responses are mapped to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrConflict] when records vanished between the two
// sync phases and the client has to list again).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the server API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, user models.User) error

	// ListHashes runs the List phase of a sync for entity. req.Sync.Mode is
	// forced to List.
	ListHashes(ctx context.Context, entity models.SyncEntity, req models.SyncRequest) (models.SyncListResponse, error)

	// FetchData runs the Data phase for ids with the token from ListHashes.
	// Records are returned undecoded, indexed by id.
	FetchData(ctx context.Context, entity models.SyncEntity, ids []int64, validation string) (map[int64]json.RawMessage, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
