// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	ErrInvalidJWTParams           = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptySubject               = errors.New("empty subject")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The token carries iss, sub (decimal user id), iat, exp and a UUIDv7 jti.
// All parameters are required.
//
//	token, err := utils.GenerateJWTToken("go-sync-keeper", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || userID <= 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        NewUUIDGenerator().Generate(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the user id from its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID
	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <jwt>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
