// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hasher

import (
	"errors"
	"fmt"
)

// ErrUnhashable is the sentinel matched by every [HashingError].
var ErrUnhashable = errors.New("value cannot be canonicalized")

// HashingError reports a value whose shape has no canonical form
// (channels, functions, complex numbers, maps with composite keys).
//
// It signals a programming error in the caller that built the hash fodder,
// so it is never retried.
type HashingError struct {
	// Type is the Go type of the offending value.
	Type string

	// Value is the offending value itself when it could be captured.
	Value any

	// Reason explains which rule rejected the value.
	Reason string
}

// Error implements the error interface.
func (e *HashingError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrUnhashable, e.Type, e.Reason)
}

// Unwrap lets callers match the error with errors.Is(err, ErrUnhashable).
func (e *HashingError) Unwrap() error {
	return ErrUnhashable
}
