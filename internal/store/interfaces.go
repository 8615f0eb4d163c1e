// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ItemRepository persists items and their tag associations.
type ItemRepository interface {
	// FindMatching returns (id, updated_at, ordered tag ids, their
	// updated_at) for every item of userID matching cond, ordered by id.
	FindMatching(ctx context.Context, userID int64, cond syncer.Condition[int64]) ([]syncer.Match[int64], error)

	// FindFullByIDs returns the items of userID among ids, with tags in link order.
	FindFullByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Item, error)

	// PatchItem locks one item of userID, hands it with its tags to patch
	// and saves the result in the same transaction. Concurrent patches of
	// one item are serialized. Fails with ErrItemNotFound, or with the
	// error patch returned.
	PatchItem(ctx context.Context, userID, id int64, patch func(models.Item) (models.Item, error)) (models.Item, error)

	// SaveItems inserts new items (ID == 0) and updates existing ones, then
	// replaces each item's tag association with exactly its Tags, in one
	// transaction. The saved items are returned with server-assigned fields.
	SaveItems(ctx context.Context, items ...models.Item) ([]models.Item, error)

	// DeleteItems removes the items of userID among ids and returns the
	// number of deleted rows.
	DeleteItems(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// TagRepository persists tags.
type TagRepository interface {
	FindMatching(ctx context.Context, userID int64, cond syncer.Condition[int64]) ([]syncer.Match[int64], error)
	FindFullByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error)
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	RenameTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	DeleteTags(ctx context.Context, userID int64, ids []int64) (int64, error)
}
