package preferences

import (
	"net/http"

	"github.com/datifyy/datifyy-api/internal/middleware"
	"github.com/datifyy/datifyy-api/internal/pkg/response"
	"github.com/datifyy/datifyy-api/internal/pkg/validation"
	"github.com/datifyy/datifyy-api/internal/pkg/validator"
)

// Handler handles partner-preferences HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates preferences handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /user-profile/partner-preferences
// @Summary Get partner preferences
// @Description Returns the authenticated user's matching criteria.
// @Tags Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=PreferencesResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-profile/partner-preferences [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	p, err := h.service.GetPreferences(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrPreferencesNotFound:
			response.NotFound(w, "Partner preferences not set yet")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, PreferencesResponseFromEntity(p))
}

// Update handles PUT /user-profile/partner-preferences
// @Summary Update partner preferences
// @Description Merges the submitted fields over the stored record and saves
// when validation passes. Warnings and a completion summary accompany the data.
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PreferencesInput true "Preference fields to update"
// @Success 200 {object} response.Response{data=UpdateResult}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user-profile/partner-preferences [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in PreferencesInput
	if err := response.DecodeJSON(r.Body, &in); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&in); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	p, result, err := h.service.UpdatePreferences(r.Context(), userID, &in)
	if err != nil {
		switch err {
		case ErrPreferencesValidation:
			response.ValidationError(w, errorDetails(result))
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &UpdateResult{
		Preferences: PreferencesResponseFromEntity(p),
		Warnings:    result.Warnings,
		Summary:     result.Summary,
	})
}

// Validate handles POST /user-profile/partner-preferences/validate
// @Summary Dry-run validation
// @Description Validates the submitted record without saving anything.
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PreferencesInput true "Preference fields to validate"
// @Success 200 {object} response.Response{data=Result}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user-profile/partner-preferences/validate [post]
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var in PreferencesInput
	if err := response.DecodeJSON(r.Body, &in); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&in); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result := h.service.ValidatePreferences(r.Context(), &in)
	response.OK(w, result)
}

// errorDetails flattens the hard errors into the envelope's details map
func errorDetails(result *Result) map[string]string {
	details := make(map[string]string)
	for field, res := range result.FieldErrors {
		if res.Type == validation.TypeError {
			details[field] = res.Message
		}
	}
	return details
}
