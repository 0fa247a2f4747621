// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/models"
)

func TestMemorySessionStore_SaveGetDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, models.Session{
		ID:        "sid",
		State:     models.SessionState{Visited: true},
		ExpiresAt: expires,
	}))

	session, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, session.State.Visited)
	assert.True(t, session.ExpiresAt.Equal(expires))

	require.NoError(t, store.Delete(ctx, "sid"))
	require.NoError(t, store.Delete(ctx, "sid"))

	_, err = store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_NoAliasing(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	state := models.SessionState{Cart: []json.RawMessage{json.RawMessage(`{"a":1}`)}}
	require.NoError(t, store.Save(ctx, models.Session{ID: "sid", State: state, ExpiresAt: time.Now().Add(time.Minute)}))

	state.Cart[0][2] = 'b'
	state.Cart = append(state.Cart, json.RawMessage(`{}`))

	got, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, got.State.Cart, 1)
	assert.JSONEq(t, `{"a":1}`, string(got.State.Cart[0]))

	got.State.Visited = true
	again, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, again.State.Visited)
}

func TestMemorySessionStore_DeleteExpired(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, models.Session{ID: "past", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, store.Save(ctx, models.Session{ID: "boundary", ExpiresAt: now}))
	require.NoError(t, store.Save(ctx, models.Session{ID: "future", ExpiresAt: now.Add(time.Second)}))

	removed, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = store.Get(ctx, "future")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "boundary")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
