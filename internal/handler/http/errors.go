// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the request decoding helpers and the
// authentication middleware. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrNoUserID means the auth middleware did not run for the route.
	ErrNoUserID = errors.New("no user ID was given")
)
