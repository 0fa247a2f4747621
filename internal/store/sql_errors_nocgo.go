// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

// go-sqlite3 error types need cgo; without it the driver cannot open
// databases and there is nothing to classify.
func isSQLiteUniqueViolation(error) bool {
	return false
}
