package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/pkg/response"
	"github.com/datifyy/datifyy-api/internal/pkg/validator"
)

// Handler handles admin authentication endpoints
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary Admin login
// @Description Authenticates an admin and returns a JWT
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Failure 401 {object} response.Response
// @Router /admin/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if details := validator.Validate(&req); details != nil {
		response.ValidationError(w, details)
		return
	}

	resp, err := h.service.Login(r.Context(), &req, r.RemoteAddr)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrAdminInactive):
			response.Forbidden(w, "Admin account is inactive")
		default:
			log.Error().Err(err).Msg("admin login failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, resp)
}

// ListAuditLogs godoc
// @Summary List audit logs
// @Description Returns audit log entries with optional filters
// @Tags admin
// @Produce json
// @Param adminId query string false "Filter by admin ID"
// @Param action query string false "Filter by action"
// @Param entityType query string false "Filter by entity type"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=AuditLogListResponse}
// @Router /admin/audit-logs [get]
func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	filter := AuditFilter{}
	q := r.URL.Query()

	if raw := q.Get("adminId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid admin ID")
			return
		}
		filter.AdminID = &id
	}
	if action := q.Get("action"); action != "" {
		filter.Action = &action
	}
	if entityType := q.Get("entityType"); entityType != "" {
		filter.EntityType = &entityType
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, "Invalid from date")
			return
		}
		filter.FromDate = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, "Invalid to date")
			return
		}
		filter.ToDate = &t
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	logs, total, err := h.service.ListAuditLogs(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list audit logs")
		response.InternalError(w)
		return
	}

	response.OK(w, AuditLogListResponse{Logs: logs, Total: total})
}
