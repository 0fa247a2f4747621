// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

func TestLogin_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
		wantBody   string
		wantCookie bool
	}{
		{
			name:       "local login succeeds with empty body",
			path:       "/api/auth",
			body:       models.Credentials{Username: "anson", Password: "hello123"},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "session login returns the user",
			path:       "/api/session/auth",
			body:       models.Credentials{Username: "anson", Password: "hello123"},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"username":"anson","displayName":"Anson"}`,
			wantCookie: true,
		},
		{
			name:       "wrong password",
			path:       "/api/auth",
			body:       models.Credentials{Username: "anson", Password: "nope"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Invalid Credentials"}`,
		},
		{
			name:       "unknown user reads the same as wrong password",
			path:       "/api/session/auth",
			body:       models.Credentials{Username: "nobody", Password: "hello123"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Invalid Credentials"}`,
		},
		{
			name:       "username match is case sensitive",
			path:       "/api/auth",
			body:       models.Credentials{Username: "Anson", Password: "hello123"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Invalid Credentials"}`,
		},
		{
			name:       "empty fields",
			path:       "/api/auth",
			body:       models.Credentials{},
			wantStatus: http.StatusBadRequest,
			wantBody: `{"error":[
				{"type":"field","value":"","msg":"The username cannot be empty","path":"username","location":"body"},
				{"type":"field","value":"","msg":"The password cannot be empty","path":"password","location":"body"}
			]}`,
		},
		{
			name:       "invalid JSON",
			path:       "/api/session/auth",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Invalid JSON was passed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rr := serve(h, newJSONRequest(t, http.MethodPost, tt.path, tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}

			c := findCookie(rr, sessionCookieName)
			if !tt.wantCookie {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, "/", c.Path)
			assert.Equal(t, 3600, c.MaxAge)

			id, ok := h.signer.Unsign(c.Value)
			require.True(t, ok)
			_, err := h.services.Sessions.Resolve(context.Background(), id)
			assert.NoError(t, err)
		})
	}
}

func TestLogin_ReusesPresentedSession(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h, newJSONRequest(t, http.MethodGet, "/", nil))
	visited := findCookie(rr, sessionCookieName)
	require.NotNil(t, visited)

	rr = serve(h, newJSONRequest(t, http.MethodPost, "/api/auth", models.Credentials{Username: "anson", Password: "hello123"}), visited)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, visited.Value, findCookie(rr, sessionCookieName).Value)

	id, _ := h.signer.Unsign(visited.Value)
	session, err := h.services.Sessions.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, session.State.Visited)
	require.NotNil(t, session.State.Passport)
	assert.Equal(t, int64(1), session.State.Passport.UserID)
}

func TestStatus_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		loginPath  string
		statusPath string
		cookie     func(h *Handler, c *http.Cookie) *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{
			name:       "local principal",
			loginPath:  "/api/auth",
			statusPath: "/api/auth/status",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"username":"anson","displayName":"Anson"}`,
		},
		{
			name:       "embedded principal",
			loginPath:  "/api/session/auth",
			statusPath: "/api/session/auth/status",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"username":"anson","displayName":"Anson"}`,
		},
		{
			name:       "local status ignores the embedded user",
			loginPath:  "/api/session/auth",
			statusPath: "/api/auth/status",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Unauthorized"}`,
		},
		{
			name:       "no cookie",
			statusPath: "/api/auth/status",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Unauthorized"}`,
		},
		{
			name:       "tampered cookie",
			loginPath:  "/api/auth",
			statusPath: "/api/auth/status",
			cookie: func(_ *Handler, c *http.Cookie) *http.Cookie {
				return &http.Cookie{Name: c.Name, Value: c.Value + "x"}
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Unauthorized"}`,
		},
		{
			name:       "unknown session id",
			statusPath: "/api/session/auth/status",
			cookie: func(h *Handler, _ *http.Cookie) *http.Cookie {
				return signedSessionCookie(h, "missing")
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			var cookie *http.Cookie
			if tt.loginPath != "" {
				cookie = loginAs(t, h, tt.loginPath, "anson", "hello123")
			}
			if tt.cookie != nil {
				cookie = tt.cookie(h, cookie)
			}

			req := newJSONRequest(t, http.MethodGet, tt.statusPath, nil)
			var rr *httptest.ResponseRecorder
			if cookie != nil {
				rr = serve(h, req, cookie)
			} else {
				rr = serve(h, req)
			}

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestStatus_PrincipalVanished(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginAs(t, h, "/api/auth", "anson", "hello123")

	require.NoError(t, h.services.Users.Delete(context.Background(), 1))

	rr := serve(h, newJSONRequest(t, http.MethodGet, "/api/auth/status", nil), cookie)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"msg":"Unauthorized"}`, rr.Body.String())
}

func TestStatus_DeletedUserIDNotTakenOver(t *testing.T) {
	h := newTestHandler(t)
	cookie := loginAs(t, h, "/api/auth", "marilyn", "hello129")

	rr := serve(h, newJSONRequest(t, http.MethodDelete, "/api/users/7", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, newJSONRequest(t, http.MethodPost, "/api/users",
		models.NewUser{Username: "mallory", DisplayName: "Mallory", Password: "pw"}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotEqual(t, int64(7), decodeBody[models.User](t, rr).ID)

	rr = serve(h, newJSONRequest(t, http.MethodGet, "/api/auth/status", nil), cookie)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"msg":"Unauthorized"}`, rr.Body.String())
}

func TestLogout_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		loginPath string
		path      string
		loggedIn  bool
	}{
		{name: "local", loginPath: "/api/auth", path: "/api/auth/logout", loggedIn: true},
		{name: "session", loginPath: "/api/session/auth", path: "/api/session/auth/logout", loggedIn: true},
		{name: "local without principal", path: "/api/auth/logout"},
		{name: "session without principal", path: "/api/session/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			if !tt.loggedIn {
				rr := serve(h, newJSONRequest(t, http.MethodPost, tt.path, nil))
				assert.Equal(t, http.StatusUnauthorized, rr.Code)
				assert.JSONEq(t, `{"msg":"Unauthorized"}`, rr.Body.String())
				return
			}

			cookie := loginAs(t, h, tt.loginPath, "anson", "hello123")

			rr := serve(h, newJSONRequest(t, http.MethodPost, tt.path, nil), cookie)
			require.Equal(t, http.StatusOK, rr.Code)

			cleared := findCookie(rr, sessionCookieName)
			require.NotNil(t, cleared)
			assert.Empty(t, cleared.Value)
			assert.Negative(t, cleared.MaxAge)

			id, _ := h.signer.Unsign(cookie.Value)
			_, err := h.services.Sessions.Resolve(context.Background(), id)
			assert.ErrorIs(t, err, service.ErrSessionNotFound)

			// the old cookie no longer authenticates
			rr = serve(h, newJSONRequest(t, http.MethodPost, tt.path, nil), cookie)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestLogout_Failure(t *testing.T) {
	h := newTestHandler(t)

	id, err := h.services.Sessions.CreateOrUpdate(context.Background(), "", func(*models.SessionState) error { return nil })
	require.NoError(t, err)

	strategy := &mockStrategy{
		name: "mock",
		principalFunc: func(context.Context, models.Session) (models.User, error) {
			return models.User{ID: 1, Username: "anson"}, nil
		},
		logoutFunc: func(context.Context, string) error {
			return fmt.Errorf("%w: %w", service.ErrLogoutFailed, store.ErrExecutingQuery)
		},
	}

	req := newJSONRequest(t, http.MethodPost, "/logout", nil)
	req.AddCookie(signedSessionCookie(h, id))
	rr := httptest.NewRecorder()
	h.logout(strategy).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, findCookie(rr, sessionCookieName))
}

func TestLogin_StoreFailure(t *testing.T) {
	h := newTestHandler(t)

	strategy := &mockStrategy{
		name: "mock",
		loginFunc: func(context.Context, string, models.Credentials) (string, models.User, error) {
			return "", models.User{}, fmt.Errorf("lookup: %w", store.ErrExecutingQuery)
		},
	}

	req := newJSONRequest(t, http.MethodPost, "/", models.Credentials{Username: "anson", Password: "hello123"})
	rr := httptest.NewRecorder()
	h.login(strategy, false).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, findCookie(rr, sessionCookieName))
}
