// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "auth.db")
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite is unavailable: %v", err)
	}
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestSQLite_Users(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()
	require.True(t, storages.Persistent)

	users, err := storages.Users.List(ctx, models.UserFilter{})
	require.NoError(t, err)
	assert.Empty(t, users)

	anson, err := storages.Users.Insert(ctx, models.User{Username: "anson", DisplayName: "Anson", Password: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, anson.ID)

	_, err = storages.Users.Insert(ctx, models.User{Username: "anson", DisplayName: "Other", Password: "hash"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = storages.Users.Insert(ctx, models.User{Username: "jason", DisplayName: "Jason", Password: "hash"})
	require.NoError(t, err)

	found, err := storages.Users.List(ctx, models.UserFilter{Field: "displayName", Value: "on"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// substring matching is case-sensitive
	found, err = storages.Users.List(ctx, models.UserFilter{Field: "username", Value: "ANS"})
	require.NoError(t, err)
	assert.Empty(t, found)

	anson.DisplayName = "Anson S."
	updated, err := storages.Users.Update(ctx, anson)
	require.NoError(t, err)
	assert.Equal(t, "Anson S.", updated.DisplayName)

	require.NoError(t, storages.Users.Delete(ctx, anson.ID))
	_, err = storages.Users.FindByID(ctx, anson.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_Sessions(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()
	now := time.Now()

	state := models.SessionState{Cart: []json.RawMessage{json.RawMessage(`{"item":"milk"}`)}, Visited: true}
	require.NoError(t, storages.Sessions.Save(ctx, models.Session{ID: "a", State: state, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, storages.Sessions.Save(ctx, models.Session{ID: "b", ExpiresAt: now.Add(-time.Minute)}))

	// upsert replaces the state
	state.Visited = false
	require.NoError(t, storages.Sessions.Save(ctx, models.Session{ID: "a", State: state, ExpiresAt: now.Add(2 * time.Hour)}))

	got, err := storages.Sessions.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.State.Visited)
	require.Len(t, got.State.Cart, 1)
	assert.JSONEq(t, `{"item":"milk"}`, string(got.State.Cart[0]))

	removed, err := storages.Sessions.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, storages.Sessions.Delete(ctx, "a"))
	_, err = storages.Sessions.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
