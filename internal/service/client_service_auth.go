// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Register implements [ClientAuthService]. A taken login is reported as
// store.ErrLoginAlreadyExists.
func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	err := a.adapter.Register(ctx, user)
	switch {
	case err == nil:
		a.logger.Info().Str("login", user.Login).Msg("registered on server")
		return nil
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}
}

// Login implements [ClientAuthService].
func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	err := a.adapter.Login(ctx, user)
	switch {
	case err == nil:
		a.logger.Info().Str("login", user.Login).Msg("logged in")
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	default:
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}
}
