// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-session-auth/models"
)

func TestIsSQLiteUniqueViolation(t *testing.T) {
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, isUniqueViolation(notNull))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}

func TestUserRepository_Insert_SQLiteUniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Insert(context.Background(), models.User{Username: "anson"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
