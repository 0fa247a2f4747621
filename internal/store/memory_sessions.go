// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore returns a process-local [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
	}
}

func (s *memorySessionStore) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	session.State = session.State.Clone()
	return session, nil
}

func (s *memorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.State = session.State.Clone()
	s.sessions[session.ID] = session

	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

func (s *memorySessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed, nil
}
