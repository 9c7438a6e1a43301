package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns profile router; every route requires authentication
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Patch("/avatar", h.UpdateAvatar)
		r.Post("/avatar/upload-url", h.AvatarUploadURL)
		r.Get("/stats", h.GetStats)
	})

	return r
}
