// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// Entity is a full record that can be indexed in a Data response.
type Entity[ID comparable] interface {
	SyncID() ID
}

// Condition narrows the records considered in List mode.
// Zero fields do not filter.
type Condition[ID comparable] struct {
	IDs    []ID
	Search map[string]string
	Skip   uint64
	Take   uint64
}

// Match is the change-detection view of one record.
type Match[ID comparable] struct {
	ID           ID
	LastModified time.Time

	// Fodder is folded into the hash, e.g. the ids of linked children.
	Fodder []any
}

// DataSource is the persistence capability the protocol consumes.
type DataSource[ID comparable, E Entity[ID]] interface {
	FindMatching(ctx context.Context, cond Condition[ID]) ([]Match[ID], error)
	FindFullByIDs(ctx context.Context, ids []ID) ([]E, error)
}

// Hash pairs an id with its change-detection hash.
type Hash[ID comparable] struct {
	ID   ID
	Hash string
}

// ListResult is the outcome of a List call.
type ListResult[ID comparable] struct {
	Hashes     []Hash[ID]
	Validation string
}

// IndexedData maps ids to full records.
type IndexedData[ID comparable, E any] map[ID]E

// Request is a single sync call. Subject identifies the caller and is bound
// into the token.
type Request[ID comparable] struct {
	Subject string
	Mode    models.SyncMode

	// Condition is read in List mode.
	Condition Condition[ID]

	// IDs and Validation are read in Data mode.
	IDs        []ID
	Validation string
}

// Response holds exactly one of List or Data, depending on the request mode.
type Response[ID comparable, E any] struct {
	List *ListResult[ID]
	Data IndexedData[ID, E]
}
