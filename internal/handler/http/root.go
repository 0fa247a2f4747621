// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// root marks the session as visited and hands out the capability cookie.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, err := h.services.Sessions.CreateOrUpdate(ctx, h.sessionID(r), func(state *models.SessionState) error {
		state.Visited = true
		return nil
	})
	if err != nil {
		log.Err(err).Msg("failed to mark session as visited")
		writeError(w, err, "error")
		return
	}
	h.setSessionCookie(w, sessionID)

	token, err := h.services.Capability.Issue(ctx)
	if err != nil {
		log.Err(err).Msg("failed to issue capability cookie")
		writeError(w, err, "error")
		return
	}
	h.setCapabilityCookie(w, token)

	utils.WriteJSON(w, models.Message{Msg: msgHelloWorld}, http.StatusOK)
}
