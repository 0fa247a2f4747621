// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidUserID: http.StatusBadRequest,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrUnknownField:    http.StatusBadRequest,

	service.ErrUserNotFound:      http.StatusUnauthorized,
	service.ErrBadCredentials:    http.StatusUnauthorized,
	service.ErrNotAuthenticated:  http.StatusUnauthorized,
	service.ErrPrincipalVanished: http.StatusUnauthorized,
	service.ErrSessionNotFound:   http.StatusUnauthorized,
	service.ErrCapabilityDenied:  http.StatusUnauthorized,
	service.ErrInvalidCartItem:   http.StatusBadRequest,
	service.ErrLogoutFailed:      http.StatusBadRequest,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrUnknownFilterField: http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusBadRequest,
	store.ErrExecutingQuery:   http.StatusBadRequest,
	store.ErrScanningRow:      http.StatusBadRequest,
	store.ErrScanningRows:     http.StatusBadRequest,
	store.ErrEncodingSession:  http.StatusBadRequest,
	store.ErrDecodingSession:  http.StatusBadRequest,
}

// wrapperErrors wrap the store error that caused them and take precedence
// over it.
var wrapperErrors = []error{service.ErrPrincipalVanished, service.ErrLogoutFailed}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest
	}

	for _, target := range wrapperErrors {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Validation failures
// are listed under key; every other error gets a plain status text message.
func writeError(w http.ResponseWriter, err error, key string) {
	status := statusFromError(err)

	if vErr, ok := validators.AsValidationError(err); ok {
		utils.WriteJSON(w, map[string][]models.FieldError{key: vErr.Fields}, status)
		return
	}

	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		writeMessage(w, msgUsernameTaken, status)
	case status == http.StatusUnauthorized:
		writeMessage(w, msgUnauthorized, status)
	default:
		writeMessage(w, http.StatusText(status), status)
	}
}

func writeMessage(w http.ResponseWriter, msg string, status int) {
	utils.WriteJSON(w, models.Message{Msg: msg}, status)
}
