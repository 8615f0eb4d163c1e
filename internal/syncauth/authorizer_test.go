// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncauth

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/hasher"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

const testKey = "test-sync-key"

func newAuthorizer[ID comparable](t *testing.T, cfg Config, scope string) *Authorizer[ID] {
	t.Helper()
	a, err := New[ID](cfg, scope, hasher.New(hasher.Config{}), logger.Nop())
	require.NoError(t, err)
	return a
}

func defaultConfig() Config {
	return Config{SignKey: testKey, Issuer: "sync-keeper", TTL: time.Minute}
}

func TestAuthorizer_RoundTrip(t *testing.T) {
	a := newAuthorizer[int64](t, defaultConfig(), "items")

	tests := []struct {
		name      string
		ids       []int64
		requested []int64
	}{
		{"same ids", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"subset", []int64{1, 2, 3}, []int64{1, 3}},
		{"single", []int64{9007199254740993}, []int64{9007199254740993}},
		{"nothing requested", []int64{1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := a.Authorize("7", tt.ids)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			assert.NoError(t, a.Validate("7", tt.requested, token))
		})
	}
}

func TestAuthorizer_RejectsSuperset(t *testing.T) {
	a := newAuthorizer[int64](t, defaultConfig(), "items")

	token, err := a.Authorize("7", []int64{1, 2})
	require.NoError(t, err)

	err = a.Validate("7", []int64{1, 2, 3}, token)
	require.ErrorIs(t, err, ErrUnauthorizedIDs)

	var unauthorized *UnauthorizedIDsError
	require.True(t, errors.As(err, &unauthorized))
	assert.Equal(t, []any{int64(3)}, unauthorized.IDs)
	assert.True(t, IsAuthError(err))
}

func TestAuthorizer_InvalidTokens(t *testing.T) {
	a := newAuthorizer[int64](t, defaultConfig(), "items")

	valid, err := a.Authorize("7", []int64{1, 3})
	require.NoError(t, err)

	otherKey := newAuthorizer[int64](t, Config{SignKey: "other", Issuer: "sync-keeper"}, "items")
	forged, err := otherKey.Authorize("7", []int64{1, 3})
	require.NoError(t, err)

	otherScope := newAuthorizer[int64](t, defaultConfig(), "tags")
	foreignScope, err := otherScope.Authorize("7", []int64{1, 3})
	require.NoError(t, err)

	otherIssuer := newAuthorizer[int64](t, Config{SignKey: testKey, Issuer: "someone-else"}, "items")
	foreignIssuer, err := otherIssuer.Authorize("7", []int64{1, 3})
	require.NoError(t, err)

	tests := []struct {
		name    string
		subject string
		token   string
	}{
		{"empty", "7", ""},
		{"garbage", "7", "not.a.token"},
		{"forged signature", "7", forged},
		{"other user", "8", valid},
		{"other entity", "7", foreignScope},
		{"other issuer", "7", foreignIssuer},
		{"truncated", "7", valid[:len(valid)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Validate(tt.subject, []int64{1, 3}, tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.True(t, IsAuthError(err))
		})
	}
}

func TestAuthorizer_Expired(t *testing.T) {
	a := newAuthorizer[int64](t, defaultConfig(), "items")
	issuedAt := time.Now().Add(-time.Hour)
	a.now = func() time.Time { return issuedAt }

	token, err := a.Authorize("7", []int64{1})
	require.NoError(t, err)

	a.now = time.Now
	assert.ErrorIs(t, a.Validate("7", []int64{1}, token), ErrInvalidToken)
}

func TestNew_DefaultTTL(t *testing.T) {
	a := newAuthorizer[int64](t, Config{SignKey: testKey, TTL: -time.Second}, "items")
	assert.Equal(t, DefaultTTL, a.ttl)
}

func TestNew_RequiresSignKey(t *testing.T) {
	_, err := New[int64](Config{}, "items", hasher.New(hasher.Config{}), logger.Nop())
	assert.ErrorIs(t, err, ErrMissingSignKey)
}

type compositeID struct {
	Shard int64  `json:"shard"`
	Key   string `json:"key"`
}

func TestAuthorizer_CompositeIDs(t *testing.T) {
	a := newAuthorizer[compositeID](t, defaultConfig(), "items")

	token, err := a.Authorize("7", []compositeID{{Shard: 1, Key: "a"}, {Shard: 2, Key: "b"}})
	require.NoError(t, err)

	assert.NoError(t, a.Validate("7", []compositeID{{Shard: 2, Key: "b"}}, token))
	assert.ErrorIs(t, a.Validate("7", []compositeID{{Shard: 2, Key: "a"}}, token), ErrUnauthorizedIDs)
}

func TestAuthorizer_Insecure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.Nop()
	log.Logger = log.Output(&buf).Level(0)

	a, err := New[int64](Config{Insecure: true}, "items", hasher.New(hasher.Config{}), log)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SYNC AUTHORIZATION IS DISABLED")

	token, err := a.Authorize("7", []int64{1})
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, a.Validate("7", []int64{1, 2, 3}, ""))
}

func TestAuthorizer_TokenIDsAreTimeOrdered(t *testing.T) {
	a := newAuthorizer[int64](t, defaultConfig(), "items")

	jti := func() string {
		token, err := a.Authorize("7", []int64{1})
		require.NoError(t, err)

		claims := &jwt.RegisteredClaims{}
		_, _, err = jwt.NewParser().ParseUnverified(token, claims)
		require.NoError(t, err)
		return claims.ID
	}

	first, second := jti(), jti()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
