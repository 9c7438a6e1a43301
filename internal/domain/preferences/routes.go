package preferences

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns preferences router; every route requires authentication
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Post("/validate", h.Validate)
	})

	return r
}
