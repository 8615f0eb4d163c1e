// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming write and sync requests before they
// reach the services.
//
// A Validator accepts any supported request value and an optional list of
// field names. With no fields every rule for the value runs, otherwise only
// the named ones do.
package validators

import "context"

// Validator validates v, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
