// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrPasswordHashing         = errors.New("password hashing failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnknownTags is returned when an item links tags that do not exist
	// or belong to another user.
	ErrUnknownTags = errors.New("unknown tags")
)

// client side
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrSyncConflict means the server data changed between List and Data.
	ErrSyncConflict = errors.New("server data changed during sync")

	// ErrSyncRejected means the server refused the validation token.
	ErrSyncRejected = errors.New("sync request rejected by server")

	// ErrIncompleteSyncData means a Data response lacked requested ids.
	ErrIncompleteSyncData = errors.New("server returned incomplete sync data")
)
