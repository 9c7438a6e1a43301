package profile

import (
	"net/http"

	"github.com/datifyy/datifyy-api/internal/middleware"
	"github.com/datifyy/datifyy-api/internal/pkg/response"
	"github.com/datifyy/datifyy-api/internal/pkg/validation"
	"github.com/datifyy/datifyy-api/internal/pkg/validator"
)

// Handler handles profile HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /user-profile
// @Summary Get own profile
// @Description Returns the profile of the authenticated user.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	p, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ProfileResponseFromEntity(p))
}

// Update handles PUT /user-profile
// @Summary Update own profile
// @Description Applies a partial profile update. Unknown fields are rejected;
// officialEmail is ignored if present.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	p, results, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case ErrProfileValidation:
			response.ValidationError(w, validationDetails(results))
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ProfileResponseFromEntity(p))
}

// Delete handles DELETE /user-profile
// @Summary Delete own profile
// @Description Soft-deletes the profile; the row is retained.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.service.DeleteProfile(r.Context(), userID); err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OKWithMessage(w, "Profile deleted", nil)
}

// UpdateAvatar handles PATCH /user-profile/avatar
// @Summary Set primary photo
// @Description Prepends the image URL to the photo list, capped at 6.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateAvatarRequest true "Image URL"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile/avatar [patch]
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req UpdateAvatarRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	p, err := h.service.SetAvatar(r.Context(), userID, req.ImageURL)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ProfileResponseFromEntity(p))
}

// AvatarUploadURL handles POST /user-profile/avatar/upload-url
// @Summary Request photo upload slot
// @Description Returns a presigned upload URL and the final public image URL.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AvatarUploadURLRequest true "Upload content type"
// @Success 200 {object} response.Response{data=AvatarUploadURLResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /user-profile/avatar/upload-url [post]
func (h *Handler) AvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	var req AvatarUploadURLRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.service.AvatarUploadURL(r.Context(), userID, req.ContentType)
	if err != nil {
		switch err {
		case ErrStorageUnavailable:
			response.Error(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Image uploads are temporarily unavailable")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// GetStats handles GET /user-profile/stats
// @Summary Profile statistics
// @Description Returns completion percentage, strength and recommendations.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=StatsResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, stats)
}

// validationDetails flattens field-level results into the envelope's
// details map
func validationDetails(results []*validation.Error) map[string]string {
	details := make(map[string]string, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		if _, exists := details[res.Field]; !exists {
			details[res.Field] = res.Message
		}
	}
	return details
}
