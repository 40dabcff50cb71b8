package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Get("/api/auth/salt", h.salt)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/vault/items", func(r chi.Router) {
			r.Post("/", h.saveItem)
			r.Get("/", h.listItems)
			r.Get("/{clientSideID}", h.getItem)
			r.Put("/{clientSideID}", h.updateItem)
			r.Delete("/{clientSideID}", h.deleteItem)
		})
	})

	return router
}
