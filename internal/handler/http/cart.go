// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// maxCartItemSize bounds the body of a cart append.
const maxCartItemSize = 1 << 20

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)
	user, _ := utils.GetPrincipalFromContext(ctx)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCartItemSize))
	if err != nil {
		log.Err(err).Msg("failed to read cart item")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	item, err := h.services.Cart.Add(ctx, session.ID, json.RawMessage(body))
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("failed to add item to cart")
		writeError(w, err, "error")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, _ := utils.GetSessionFromContext(ctx)

	utils.WriteJSON(w, h.services.Cart.Items(ctx, session), http.StatusOK)
}
