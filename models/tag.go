// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tag is a user-owned label that items can be linked to.
type Tag struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"-"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RelationID returns the tag id; it makes Tag usable as a relation child.
func (t Tag) RelationID() int64 {
	return t.ID
}

// SyncID returns the tag id; it makes Tag indexable in sync Data responses.
func (t Tag) SyncID() int64 {
	return t.ID
}

// TagCreate is the body of POST /api/tags/.
type TagCreate struct {
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// TagPatch is the body of PATCH /api/tags/{id}.
type TagPatch struct {
	ID     int64  `json:"-"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}
