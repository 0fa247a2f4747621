// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Route("/api/auth", h.authRoutes(h.services.LocalAuth, false))
		r.Route("/api/session/auth", h.authRoutes(h.services.EmbedAuth, true))
	})

	// routes behind the session principal
	router.Group(func(r chi.Router) {
		r.Use(h.requirePrincipal)
		r.Post("/api/cart", h.addToCart)
		r.Get("/api/cart", h.getCart)
	})

	// routes behind the capability cookie
	router.Group(func(r chi.Router) {
		r.Use(h.requireCapability)
		r.Get("/api/products", h.listProducts)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.resolveUserID)
			r.Get("/", h.getUser)
			r.Put("/", h.replaceUser)
			r.Patch("/", h.patchUser)
			r.Delete("/", h.deleteUser)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
