// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/utils"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Products.List(r.Context()), http.StatusOK)
}
