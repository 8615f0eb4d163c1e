// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncMode selects the phase of a sync request.
type SyncMode string

const (
	// SyncModeList asks for lightweight hashes of every matching record
	// together with a validation token covering the listed ids.
	SyncModeList SyncMode = "List"

	// SyncModeData asks for full records of a subset of ids previously
	// returned by a List call, authorized by that call's token.
	SyncModeData SyncMode = "Data"
)

// SyncHash is the change-detection descriptor of a single record.
// The client compares Hash against its cached value to decide whether the
// full record has to be fetched again.
type SyncHash struct {
	ID   int64  `json:"id"`
	Hash string `json:"hash"`
}

// SyncParams carries the protocol part of a sync request.
type SyncParams struct {
	// Mode is either [SyncModeList] or [SyncModeData].
	Mode SyncMode `json:"mode"`

	// IDs lists the records requested in Data mode.
	IDs []int64 `json:"ids,omitempty"`

	// Validation is the token returned by the preceding List response.
	// Required in Data mode, ignored in List mode.
	Validation string `json:"validation,omitempty"`
}

// SyncRequest is the body of every POST /api/{entity}/sync call.
//
// In List mode IDs, Search, Page and PageSize narrow the listed records.
// In Data mode only Sync is read.
type SyncRequest struct {
	Sync SyncParams `json:"sync"`

	// IDs restricts the List phase to a discrete set of records.
	IDs []int64 `json:"ids,omitempty"`

	// Search holds parameter-search predicates (field name → value).
	// Supported fields depend on the entity.
	Search map[string]string `json:"search,omitempty"`

	// Page is the zero-based page index; used together with PageSize.
	Page uint64 `json:"page,omitempty"`

	// PageSize is the number of records per page. Zero disables paging.
	PageSize uint64 `json:"page_size,omitempty"`
}

// SyncListResponse is returned by a List-mode request.
type SyncListResponse struct {
	Hashes []SyncHash `json:"hashes"`

	// Validation is the opaque token the client must present unmodified
	// in the following Data-mode request.
	Validation string `json:"validation"`
}

// SyncDataResponse is returned by a Data-mode request. Records are indexed
// by id so the client can merge them into its cache directly.
type SyncDataResponse[E any] struct {
	Data map[int64]E `json:"data"`
}

// SyncEntity names a synchronized collection. It is the path segment of the
// sync endpoint and the namespace of the client cache.
type SyncEntity string

const (
	SyncEntityItems SyncEntity = "items"
	SyncEntityTags  SyncEntity = "tags"
)

// SyncEntities lists every synchronized collection in sync order.
var SyncEntities = []SyncEntity{SyncEntityTags, SyncEntityItems}

// SyncResponse is the outcome of one sync call. Exactly one field is set,
// matching the request mode.
type SyncResponse[E any] struct {
	List *SyncListResponse
	Data *SyncDataResponse[E]
}

// Body returns the set field for encoding.
func (r SyncResponse[E]) Body() any {
	if r.List != nil {
		return r.List
	}
	return r.Data
}

// SyncReport summarizes one client sync of an entity.
type SyncReport struct {
	Entity SyncEntity

	// Listed is the number of records the server listed.
	Listed int

	// Fetched is the number of records downloaded because their hash was
	// new or changed.
	Fetched int

	// Removed is the number of cached records dropped because the server
	// no longer lists them.
	Removed int
}
