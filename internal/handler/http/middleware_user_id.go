// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// resolveUserID parses the {id} path parameter and checks that the user
// exists before the handler runs. The id is put into the request context
// under [utils.UserIDCtxKey].
func (h *Handler) resolveUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		id, err := parseUserID(chi.URLParam(r, "id"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected user id")
			writeMessage(w, msgInvalidID, http.StatusBadRequest)
			return
		}

		if _, err = h.services.Users.Get(ctx, id); err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				log.Err(err).Int64("user_id", id).Msg("failed to look up user")
			}
			writeError(w, err, validationKey)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	return id, nil
}
