// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

// validationKey is the response key listing field errors of user requests.
const validationKey = "errors"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.Users.List(r.Context(), userQueryFromRequest(r))
	if err != nil {
		if _, ok := validators.AsValidationError(err); !ok {
			log.Err(err).Msg("failed to list users")
		}
		writeError(w, err, validationKey)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := utils.GetUserIDFromContext(ctx)

	user, err := h.services.Users.Get(ctx, id)
	if err != nil {
		writeError(w, err, validationKey)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.Users.Create(r.Context(), newUser)
	if err != nil {
		logUserWriteError(log, err)
		writeError(w, err, validationKey)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id, _ := utils.GetUserIDFromContext(ctx)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.Users.Replace(ctx, id, newUser)
	if err != nil {
		logUserWriteError(log, err)
		writeError(w, err, validationKey)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) patchUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id, _ := utils.GetUserIDFromContext(ctx)

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.Users.Patch(ctx, id, patch)
	if err != nil {
		logUserWriteError(log, err)
		writeError(w, err, validationKey)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.Users.Delete(ctx, id); err != nil {
		writeError(w, err, validationKey)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// userQueryFromRequest keeps absent query parameters nil so the validator
// can tell them apart from empty ones.
func userQueryFromRequest(r *http.Request) models.UserQuery {
	values := r.URL.Query()

	var query models.UserQuery
	if values.Has("filter") {
		filter := values.Get("filter")
		query.Filter = &filter
	}
	if values.Has("value") {
		value := values.Get("value")
		query.Value = &value
	}

	return query
}

func logUserWriteError(log *logger.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		log.Info().Err(err).Msg("username already exists")
	case errors.Is(err, store.ErrUserNotFound):
	default:
		if _, ok := validators.AsValidationError(err); !ok {
			log.Err(err).Msg("user write failed")
		}
	}
}
