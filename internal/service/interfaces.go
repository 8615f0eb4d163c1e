// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between the HTTP handlers and
// the repositories: authentication, item and tag writes with relation
// reconciliation, the two-phase sync of both entities, and the client side
// of the sync.
package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService manages items and their tag links.
type ItemService interface {
	// Create stores a new item. Tag instructions are applied to an empty
	// tag list, so only Add is meaningful.
	Create(ctx context.Context, req models.ItemCreate) (models.Item, error)

	// Patch updates the given fields of an item and applies the tag
	// instructions to its current tag list.
	Patch(ctx context.Context, req models.ItemPatch) (models.Item, error)

	// Delete removes items and returns how many were deleted.
	Delete(ctx context.Context, req models.DeleteRequest) (int64, error)

	// Sync runs one List or Data call over the user's items.
	Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Item], error)
}

// TagService manages tags.
type TagService interface {
	Create(ctx context.Context, req models.TagCreate) (models.Tag, error)
	Rename(ctx context.Context, req models.TagPatch) (models.Tag, error)
	Delete(ctx context.Context, req models.DeleteRequest) (int64, error)
	Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Tag], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
