// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUsernameTaken is returned when an insert or update would make two
	// users share a username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrSessionNotFound is returned when no session is stored under the id.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrUnknownFilterField is returned when a listing filter names a field
	// that users cannot be filtered by.
	ErrUnknownFilterField = errors.New("unknown filter field")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
	ErrEncodingSession  = errors.New("failed to encode session state")
	ErrDecodingSession  = errors.New("failed to decode session state")
	ErrUnsupportedDSN   = errors.New("unsupported database DSN")
)
