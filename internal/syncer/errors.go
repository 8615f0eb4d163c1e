// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import "errors"

var (
	// ErrInvalidMode is returned for a request that is neither List nor Data.
	ErrInvalidMode = errors.New("invalid sync mode")

	// ErrMissingRecords is returned when an authorized id no longer exists
	// in the data source. The client should run a new List phase.
	ErrMissingRecords = errors.New("requested records no longer exist")

	// ErrDataSource wraps failures of the underlying data source.
	ErrDataSource = errors.New("sync data source failed")
)
