// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/items", func(r chi.Router) {
			r.Post("/sync", h.syncItems)
			r.Post("/", h.createItem)
			r.Patch("/{id}", h.patchItem)
			r.Delete("/", h.deleteItems)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Post("/sync", h.syncTags)
			r.Post("/", h.createTag)
			r.Patch("/{id}", h.renameTag)
			r.Delete("/", h.deleteTags)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
