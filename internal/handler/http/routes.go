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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/signin", h.signin)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/notes", h.createNote)
		r.Get("/notes", h.listNotes)
		r.Get("/notes/{noteID}", h.getNote)
		r.Put("/notes/{noteID}", h.updateNote)
		r.Delete("/notes/{noteID}", h.deleteNote)
	})

	return router
}
