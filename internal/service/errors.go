// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUserNotFound is returned by the verifier when no user has the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials is returned by the verifier on a password mismatch.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch is returned by a PasswordScheme.
	ErrPasswordMismatch = errors.New("password does not match")

	ErrSessionNotFound   = errors.New("session not found")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrPrincipalVanished = errors.New("session principal no longer exists")
	ErrLogoutFailed      = errors.New("logout failed")

	ErrCapabilityDenied = errors.New("capability token rejected")
	ErrInvalidCartItem  = errors.New("cart item must be a JSON value")
)
