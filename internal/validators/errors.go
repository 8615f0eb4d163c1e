// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidID        = errors.New("invalid ID")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrEmptyIDs         = errors.New("IDs list cannot be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidSyncMode  = errors.New("invalid sync mode")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidPage      = errors.New("page is out of range")
)
