// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-session-auth/models"
)

// memoryUserDirectory keeps users in an id-ordered slice.
// Ids are never reused, even after the record holding them is deleted.
type memoryUserDirectory struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

// NewMemoryUserDirectory returns an in-memory [UserDirectory] holding a copy
// of seed. Seed records must already have unique usernames and ascending ids.
func NewMemoryUserDirectory(seed ...models.User) UserDirectory {
	d := &memoryUserDirectory{
		users:  slices.Clone(seed),
		nextID: 1,
	}
	for _, u := range seed {
		d.nextID = max(d.nextID, u.ID+1)
	}

	return d
}

// DefaultUsers is the directory content used when no database is configured.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "anson", DisplayName: "Anson", Password: "hello123"},
		{ID: 2, Username: "jack", DisplayName: "Jack", Password: "hello124"},
		{ID: 3, Username: "adam", DisplayName: "Adam", Password: "hello125"},
		{ID: 4, Username: "tina", DisplayName: "Tina", Password: "hello126"},
		{ID: 5, Username: "jason", DisplayName: "Jason", Password: "hello127"},
		{ID: 6, Username: "henry", DisplayName: "Henry", Password: "hello128"},
		{ID: 7, Username: "marilyn", DisplayName: "Marilyn", Password: "hello129"},
	}
}

func (d *memoryUserDirectory) FindByUsername(_ context.Context, username string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Username == username {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (d *memoryUserDirectory) FindByID(_ context.Context, id int64) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx := d.indexOf(id)
	if idx == -1 {
		return models.User{}, ErrUserNotFound
	}

	return d.users[idx], nil
}

func (d *memoryUserDirectory) List(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if filter.Field == "" {
		return slices.Clone(d.users), nil
	}

	field, ok := userFieldGetters[filter.Field]
	if !ok {
		return nil, ErrUnknownFilterField
	}

	found := make([]models.User, 0)
	for _, u := range d.users {
		if strings.Contains(field(u), filter.Value) {
			found = append(found, u)
		}
	}

	return found, nil
}

func (d *memoryUserDirectory) Insert(_ context.Context, user models.User) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.usernameTaken(user.Username, 0) {
		return models.User{}, ErrUsernameTaken
	}

	user.ID = d.nextID
	d.nextID++
	d.users = append(d.users, user)

	return user, nil
}

func (d *memoryUserDirectory) Update(_ context.Context, user models.User) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(user.ID)
	if idx == -1 {
		return models.User{}, ErrUserNotFound
	}

	if d.usernameTaken(user.Username, user.ID) {
		return models.User{}, ErrUsernameTaken
	}

	d.users[idx] = user

	return user, nil
}

func (d *memoryUserDirectory) Delete(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx == -1 {
		return ErrUserNotFound
	}

	d.users = slices.Delete(d.users, idx, idx+1)

	return nil
}

// indexOf must be called with d.mu held.
func (d *memoryUserDirectory) indexOf(id int64) int {
	return slices.IndexFunc(d.users, func(u models.User) bool { return u.ID == id })
}

// usernameTaken must be called with d.mu held. The user with id exceptID is
// ignored so a record can keep its own username on update.
func (d *memoryUserDirectory) usernameTaken(username string, exceptID int64) bool {
	return slices.ContainsFunc(d.users, func(u models.User) bool {
		return u.Username == username && u.ID != exceptID
	})
}

var userFieldGetters = map[string]func(models.User) string{
	"username":    func(u models.User) string { return u.Username },
	"displayName": func(u models.User) string { return u.DisplayName },
}
