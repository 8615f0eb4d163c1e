// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is the primary synchronized entity. Each item belongs to a single
// user and is linked to any number of that user's tags.
type Item struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the owner; never exposed to clients.
	UserID int64 `json:"-"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// Content is the free-form payload of the item.
	Content string `json:"content"`

	// Tags is the ordered list of linked tags. Order matches link order.
	Tags []Tag `json:"tags"`

	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the last-modified timestamp that drives the sync hash.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SyncID returns the item id; it makes Item indexable in sync Data responses.
func (i Item) SyncID() int64 {
	return i.ID
}

// TagIDs returns the ids of the linked tags in link order.
func (i Item) TagIDs() []int64 {
	ids := make([]int64, 0, len(i.Tags))
	for _, t := range i.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// ItemCreate is the body of POST /api/items/.
type ItemCreate struct {
	UserID  int64           `json:"-"`
	Name    string          `json:"name"`
	Content string          `json:"content"`
	Tags    []RelationPatch `json:"tags,omitempty"`
}

// ItemPatch is the body of PATCH /api/items/{id}.
// Nil fields are left unchanged; Tags is applied as relation instructions.
type ItemPatch struct {
	ID      int64           `json:"-"`
	UserID  int64           `json:"-"`
	Name    *string         `json:"name,omitempty"`
	Content *string         `json:"content,omitempty"`
	Tags    []RelationPatch `json:"tags,omitempty"`
}

// DeleteRequest is the body of DELETE /api/items/ and DELETE /api/tags/.
type DeleteRequest struct {
	UserID int64   `json:"-"`
	IDs    []int64 `json:"ids"`
}
