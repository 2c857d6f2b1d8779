// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthPath is the health-check route. It is the only path the auth
// middleware lets through without a token.
const HealthPath = "/actuator/health"

// Install adds the middleware chain to router and mounts the health route.
//
// chi requires middlewares to be registered before any route, so Install
// must run before the host adds its own routes.
func (h *Handler) Install(router chi.Router) {
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.auth,
	)

	router.Get(HealthPath, h.health)
}

// Init returns a new router with the chain installed.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	h.Install(router)
	return router
}
