package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TrustScoreHandler is the slice of the trust-score surface mounted under admin
type TrustScoreHandler interface {
	GetForUser(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

// Routes returns the admin router. Login is public, everything else requires
// an admin token and the matching permission.
func Routes(h *Handler, userHandler *UserHandler, trustHandler TrustScoreHandler, jwtSvc *JWTService, adminSvc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSvc, adminSvc))

		r.With(RequirePermission(PermViewAuditLogs)).Get("/audit-logs", h.ListAuditLogs)

		r.Route("/users", func(r chi.Router) {
			r.With(RequirePermission(PermViewUsers)).Get("/", userHandler.List)
			r.With(RequirePermission(PermViewUsers)).Get("/{id}", userHandler.GetByID)
			r.With(RequirePermission(PermBanUsers)).Post("/{id}/ban", userHandler.Ban)
			r.With(RequirePermission(PermBanUsers)).Post("/{id}/unban", userHandler.Unban)
			r.With(RequirePermission(PermVerifyUsers)).Post("/{id}/verify", userHandler.Verify)
			r.With(RequirePermission(PermDeleteUsers)).Delete("/{id}", userHandler.Delete)

			r.With(RequirePermission(PermViewTrustScores)).Get("/{id}/trust-score", trustHandler.GetForUser)
			r.With(RequirePermission(PermRecalculateTrustScores)).Post("/{id}/trust-score/recalculate", trustHandler.Recalculate)
		})
	})

	return r
}
