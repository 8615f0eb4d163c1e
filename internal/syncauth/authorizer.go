// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncauth issues and verifies the signed tokens that bind a Data
// phase request to the ids shown in the preceding List phase.
//
// Tokens are stateless HS256 JWTs. Besides the id list they carry the
// issuer, the entity scope as audience, the user as subject and an expiry,
// so a token minted for one user or entity is useless for another.
package syncauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sync-keeper/internal/hasher"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// DefaultTTL is applied when Config.TTL is zero or negative.
const DefaultTTL = 15 * time.Minute

// Config is the immutable authorizer configuration, injected at startup.
type Config struct {
	// SignKey is the HMAC secret used to sign and verify tokens.
	SignKey string

	// Issuer is written to and required in the "iss" claim.
	Issuer string

	// TTL is the lifetime of a token.
	TTL time.Duration

	// Insecure disables authorization entirely: Authorize returns an empty
	// token and Validate accepts anything. Development only.
	Insecure bool
}

type signedClaims[ID comparable] struct {
	IDs []ID `json:"ids"`
	jwt.RegisteredClaims
}

// parsedClaims decodes ids loosely; numbers arrive as json.Number so they
// canonicalize exactly like the ids they were encoded from.
type parsedClaims struct {
	IDs []any `json:"ids"`
	jwt.RegisteredClaims
}

// Authorizer mints and checks sync tokens for one entity scope.
// It holds no mutable state and is safe for concurrent use.
type Authorizer[ID comparable] struct {
	signKey  []byte
	issuer   string
	ttl      time.Duration
	insecure bool
	scope    string

	hasher *hasher.Hasher
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// New returns an Authorizer for scope (usually the entity name, e.g. "items").
func New[ID comparable](cfg Config, scope string, h *hasher.Hasher, log *logger.Logger) (*Authorizer[ID], error) {
	if cfg.SignKey == "" && !cfg.Insecure {
		return nil, ErrMissingSignKey
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if cfg.Insecure {
		log.Warn().Str("scope", scope).Msg("SYNC AUTHORIZATION IS DISABLED: any client may fetch any record it can name")
	}

	return &Authorizer[ID]{
		signKey:  []byte(cfg.SignKey),
		issuer:   cfg.Issuer,
		ttl:      ttl,
		insecure: cfg.Insecure,
		scope:    scope,
		hasher:   h,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		now:      time.Now,
	}, nil
}

// Authorize signs a token covering ids for subject.
func (a *Authorizer[ID]) Authorize(subject string, ids []ID) (string, error) {
	if a.insecure {
		return "", nil
	}

	if ids == nil {
		ids = []ID{}
	}

	now := a.now()
	claims := signedClaims[ID]{
		IDs: ids,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{a.scope},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			ID:        a.ids.Generate(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return token, nil
}

// Validate verifies token and checks that requested is a subset of the ids
// it covers. Returns ErrInvalidToken or an *UnauthorizedIDsError on failure.
func (a *Authorizer[ID]) Validate(subject string, requested []ID, token string) error {
	if a.insecure {
		a.logger.Warn().Str("scope", a.scope).Int("ids", len(requested)).Msg("sync token validation skipped")
		return nil
	}

	if token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	claims := &parsedClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithAudience(a.scope),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithJSONNumber(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	allowed := make(map[uint64]struct{}, len(claims.IDs))
	for _, id := range claims.IDs {
		sum, err := a.hasher.Sum(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		allowed[sum] = struct{}{}
	}

	var denied []any
	for _, id := range requested {
		sum, err := a.hasher.Sum(id)
		if err != nil {
			return err
		}
		if _, ok := allowed[sum]; !ok {
			denied = append(denied, id)
		}
	}

	if len(denied) > 0 {
		return &UnauthorizedIDsError{IDs: denied}
	}
	return nil
}

// IsAuthError reports whether err is a token or subset failure, as opposed
// to an infrastructure error.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrUnauthorizedIDs)
}
