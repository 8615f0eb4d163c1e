// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Match them with errors.Is.
var (
	// ErrLoginAlreadyExists is returned when registering a login that is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the given login.
	ErrUserNotFound = errors.New("no user was found")

	// ErrItemNotFound is returned when an item does not exist or belongs to
	// another user.
	ErrItemNotFound = errors.New("item was not found")

	// ErrTagNotFound is returned when a tag does not exist or belongs to
	// another user.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrAlreadyExists is returned on a unique constraint violation.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrRelatedNotFound is returned on a foreign key violation, e.g. linking
	// an item to a tag that was deleted concurrently.
	ErrRelatedNotFound = errors.New("related record was not found")

	// ErrUnsupportedSearch is returned for a search field the entity does
	// not support or a value that cannot be parsed.
	ErrUnsupportedSearch = errors.New("unsupported search parameter")

	// ErrCacheRecordNotFound is returned by the client cache for unknown ids.
	ErrCacheRecordNotFound = errors.New("cached record was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
