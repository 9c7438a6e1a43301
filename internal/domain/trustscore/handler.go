package trustscore

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/datifyy/datifyy-api/internal/pkg/response"
)

// Handler handles trust-score HTTP requests (admin surface)
type Handler struct {
	service *Service
}

// NewHandler creates trust-score handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetForUser handles GET /api/admin/users/{id}/trust-score
// @Summary Get a user's trust score
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=TrustScoreResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/admin/users/{id}/trust-score [get]
func (h *Handler) GetForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	ts, err := h.service.GetOrCreate(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, ResponseFromEntity(ts))
}

// Recalculate handles POST /api/admin/users/{id}/trust-score/recalculate
// @Summary Recalculate a user's trust score
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=TrustScoreResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id}/trust-score/recalculate [post]
func (h *Handler) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	ts, err := h.service.Recalculate(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrTrustScoreNotFound:
			response.NotFound(w, "Trust score not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ResponseFromEntity(ts))
}
