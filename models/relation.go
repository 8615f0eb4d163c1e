// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RelationMode is the operation a [RelationPatch] applies to an association.
type RelationMode string

const (
	// RelationAdd links the child to the parent.
	RelationAdd RelationMode = "Add"

	// RelationDelete unlinks the child from the parent.
	RelationDelete RelationMode = "Delete"
)

// RelationPatch is a single add/delete instruction against a parent
// entity's association, as it appears in create and patch payloads:
//
//	{ "id": 5, "mode": "Add" }
type RelationPatch struct {
	ID   int64        `json:"id"`
	Mode RelationMode `json:"mode"`
}
