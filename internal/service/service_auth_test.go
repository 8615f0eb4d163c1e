// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-sync-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, repo
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Login)
			assert.NotEqual(t, "secret", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
			u.UserID = 7
			return u, nil
		})

	got, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for _, u := range []models.User{{Login: "alice"}, {Password: "secret"}, {}} {
		_, err := svc.RegisterUser(context.Background(), u)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 7, Login: "alice", Password: string(hash)}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{"ok", "secret", nil, nil},
		{"wrong password", "nope", nil, ErrWrongPassword},
		{"unknown user", "secret", store.ErrUserNotFound, store.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			if tt.findErr != nil {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, tt.findErr)
			} else {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
			}

			got, err := svc.Login(context.Background(), models.User{Login: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.UserID)
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
