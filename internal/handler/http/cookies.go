// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

const (
	sessionCookieName    = "sid"
	capabilityCookieName = "Hello"
)

// sessionID returns the verified session identifier carried by the request,
// or "" when the cookie is missing, unsigned or tampered with.
func (h *Handler) sessionID(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	id, ok := h.signer.Unsign(c.Value)
	if !ok {
		logger.FromRequest(r).Debug().Msg("rejected session cookie with invalid signature")
		return ""
	}

	return id
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, id string) {
	maxAge := h.services.Sessions.MaxAge()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    h.signer.Sign(id),
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) setCapabilityCookie(w http.ResponseWriter, token string) {
	maxAge := h.services.Capability.MaxAge()
	http.SetCookie(w, &http.Cookie{
		Name:     capabilityCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
		SameSite: http.SameSiteLaxMode,
	})
}
