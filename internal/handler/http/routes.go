package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the chi router: recovery, tracing, logging, and
// compression run on every request; the bearer-token middleware guards
// the protected group only.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/me", h.me)
	})

	// the vanilla browser client
	if h.staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
	}

	return router
}
