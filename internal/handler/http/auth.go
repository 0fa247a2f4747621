// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// authRoutes mounts login, status and logout for one strategy. With
// respondWithUser the login response carries the authenticated user,
// otherwise it has an empty body.
func (h *Handler) authRoutes(strategy service.AuthStrategy, respondWithUser bool) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.login(strategy, respondWithUser))
		r.Get("/status", h.status(strategy))
		r.Post("/logout", h.logout(strategy))
	}
}

func (h *Handler) login(strategy service.AuthStrategy, respondWithUser bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r).With().Str("strategy", strategy.Name()).Logger()

		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Err(err).Msg(msgInvalidJSON)
			writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}

		if err := h.validator.Validate(ctx, creds); err != nil {
			writeError(w, err, "error")
			return
		}

		sessionID, user, err := strategy.Login(ctx, h.sessionID(r), creds)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrBadCredentials):
				log.Info().Err(err).Str("username", creds.Username).Msg("login rejected")
				writeMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("unexpected error occurred during login")
				writeError(w, err, "error")
			}
			return
		}

		h.setSessionCookie(w, sessionID)

		if !respondWithUser {
			w.WriteHeader(http.StatusOK)
			return
		}
		utils.WriteJSON(w, user, http.StatusOK)
	}
}

func (h *Handler) status(strategy service.AuthStrategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.strategyPrincipal(r, strategy)
		if err != nil {
			writeMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		utils.WriteJSON(w, user, http.StatusOK)
	}
}

func (h *Handler) logout(strategy service.AuthStrategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if _, err := h.strategyPrincipal(r, strategy); err != nil {
			writeMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		if err := strategy.Logout(r.Context(), h.sessionID(r)); err != nil {
			log.Err(err).Str("strategy", strategy.Name()).Msg("logout failed")
			writeError(w, err, "error")
			return
		}

		h.clearSessionCookie(w)
		w.WriteHeader(http.StatusOK)
	}
}

// strategyPrincipal resolves the request session and the user strategy
// recorded in it. Failures other than a missing principal are logged.
func (h *Handler) strategyPrincipal(r *http.Request, strategy service.AuthStrategy) (models.User, error) {
	ctx := r.Context()

	session, err := h.services.Sessions.Resolve(ctx, h.sessionID(r))
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			logger.FromRequest(r).Err(err).Msg("failed to resolve session")
		}
		return models.User{}, err
	}

	user, err := h.principal(ctx, session, strategy)
	if err != nil && !errors.Is(err, service.ErrNotAuthenticated) {
		logger.FromRequest(r).Err(err).Str("strategy", strategy.Name()).Msg("failed to restore session principal")
	}

	return user, err
}
