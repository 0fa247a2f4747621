// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &validators.ValidationError{}, want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", &validators.ValidationError{}), want: http.StatusBadRequest},
		{name: "invalid id", err: fmt.Errorf("%w: %q", ErrInvalidUserID, "x"), want: http.StatusBadRequest},
		{name: "unknown user on login", err: service.ErrUserNotFound, want: http.StatusUnauthorized},
		{name: "bad credentials", err: service.ErrBadCredentials, want: http.StatusUnauthorized},
		{name: "not authenticated", err: service.ErrNotAuthenticated, want: http.StatusUnauthorized},
		{name: "principal vanished wins over the store error", err: fmt.Errorf("%w: %w", service.ErrPrincipalVanished, store.ErrUserNotFound), want: http.StatusUnauthorized},
		{name: "logout failure wins over the session error", err: fmt.Errorf("%w: %w", service.ErrLogoutFailed, service.ErrSessionNotFound), want: http.StatusBadRequest},
		{name: "capability", err: service.ErrCapabilityDenied, want: http.StatusUnauthorized},
		{name: "cart item", err: service.ErrInvalidCartItem, want: http.StatusBadRequest},
		{name: "missing user on CRUD", err: fmt.Errorf("user deletion ended with error: %w", store.ErrUserNotFound), want: http.StatusNotFound},
		{name: "duplicate username", err: store.ErrUsernameTaken, want: http.StatusConflict},
		{name: "query failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ValidationKey(t *testing.T) {
	err := &validators.ValidationError{Fields: []models.FieldError{{Type: "field", Value: "", Msg: "Must have something", Path: "displayName", Location: "body"}}}

	rr := httptest.NewRecorder()
	writeError(rr, err, "errors")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"errors":[{"type":"field","value":"","msg":"Must have something","path":"displayName","location":"body"}]}`, rr.Body.String())
}

func TestWriteError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "conflict", err: store.ErrUsernameTaken, wantCode: http.StatusConflict, wantBody: `{"msg":"Username already exists"}`},
		{name: "unauthorized", err: service.ErrSessionNotFound, wantCode: http.StatusUnauthorized, wantBody: `{"msg":"Unauthorized"}`},
		{name: "internal", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: `{"msg":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err, "error")

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
