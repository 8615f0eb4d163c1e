// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncauth

import (
	"errors"
	"fmt"
)

var (
	// ErrSigning means the token could not be signed. It points at
	// misconfiguration and maps to a server error.
	ErrSigning = errors.New("sync token signing failed")

	// ErrInvalidToken covers malformed, forged, expired or foreign tokens.
	ErrInvalidToken = errors.New("invalid sync token")

	// ErrUnauthorizedIDs means a Data request asked for ids not covered by
	// its token.
	ErrUnauthorizedIDs = errors.New("ids not authorized by sync token")

	// ErrMissingSignKey is returned by New when no key is configured and
	// authorization is not explicitly disabled.
	ErrMissingSignKey = errors.New("sync sign key is required")
)

// UnauthorizedIDsError lists the requested ids the token did not cover.
type UnauthorizedIDsError struct {
	IDs []any
}

func (e *UnauthorizedIDsError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnauthorizedIDs, e.IDs)
}

func (e *UnauthorizedIDsError) Unwrap() error {
	return ErrUnauthorizedIDs
}
