// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		target = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNoToken):
		target = ErrTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrForbidden):
		target = ErrSyncRejected
	case errors.Is(err, adapter.ErrConflict):
		target = ErrSyncConflict
	default:
		return err
	}

	return fmt.Errorf("%w: %w", target, err)
}
