// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by ValidateJWTToken for every rejected token.
var ErrInvalidToken = errors.New("invalid token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying subject.
//
// The token includes the following standard claims:
//   - Subject   (sub): the carried value
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("World", time.Minute, "secret")
func GenerateJWTToken(subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWTToken verifies the signature and expiry of tokenString and
// returns its subject. Only HS256 is accepted.
//
// Example usage:
//
//	subject, err := utils.ValidateJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateJWTToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return subject, nil
}
