// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// requirePrincipal resolves the session cookie and the user recorded in it
// by any registered strategy. Both are put into the request context;
// requests without a principal get 401.
func (h *Handler) requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		session, err := h.services.Sessions.Resolve(ctx, h.sessionID(r))
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				log.Err(err).Msg("failed to resolve session")
			}
			writeMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		user, err := h.principal(ctx, session, h.services.Strategies()...)
		if err != nil {
			if !errors.Is(err, service.ErrNotAuthenticated) {
				log.Err(err).Str("session_id", session.ID).Msg("failed to restore session principal")
			}
			writeMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithSession(ctx, session)
		ctx = utils.WithPrincipal(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principal returns the user recorded by the first strategy that has one.
func (h *Handler) principal(ctx context.Context, session models.Session, strategies ...service.AuthStrategy) (models.User, error) {
	for _, strategy := range strategies {
		user, err := strategy.Principal(ctx, session)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, service.ErrNotAuthenticated) {
			return models.User{}, err
		}
	}

	return models.User{}, service.ErrNotAuthenticated
}

// requireCapability lets the request through only with a valid capability
// cookie. Missing, tampered, expired and wrong-valued cookies are
// indistinguishable to the client.
func (h *Handler) requireCapability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(capabilityCookieName)
		if err != nil {
			writeMessage(w, msgNeedCookies, http.StatusUnauthorized)
			return
		}

		if err = h.services.Capability.Verify(r.Context(), c.Value); err != nil {
			writeMessage(w, msgNeedCookies, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
