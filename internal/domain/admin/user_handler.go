package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/domain/user"
	"github.com/datifyy/datifyy-api/internal/pkg/response"
	"github.com/datifyy/datifyy-api/internal/pkg/validator"
)

// UserHandler handles admin user-management endpoints. List queries join
// profile data directly; mutations go through the user repository.
type UserHandler struct {
	db      *sqlx.DB
	users   user.Repository
	service *Service
}

// NewUserHandler creates user management handler
func NewUserHandler(db *sqlx.DB, users user.Repository, service *Service) *UserHandler {
	return &UserHandler{db: db, users: users, service: service}
}

// resolveUser maps lookup failures and missing rows to a 404, matching the
// soft-delete filter the repository applies.
func (h *UserHandler) resolveUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) bool {
	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")
		response.InternalError(w)
		return false
	}
	if u == nil {
		response.NotFound(w, "User not found")
		return false
	}
	return true
}

// List godoc
// @Summary List users
// @Description Returns a paginated list of users with profile data and filters
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search by name or email"
// @Param city query string false "Filter by current city"
// @Param verified query bool false "Filter by email verification"
// @Param banned query bool false "Filter by ban status"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=UserListResponse}
// @Router /admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := `
		SELECT u.id, u.email, p.first_name, p.last_name, p.current_city,
		       u.email_verified, u.phone_verified, u.is_banned, u.ban_reason,
		       u.created_at, u.last_login_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id AND p.is_deleted = false
		WHERE u.is_deleted = false`
	countQuery := `
		SELECT COUNT(*)
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id AND p.is_deleted = false
		WHERE u.is_deleted = false`
	args := []interface{}{}
	argIndex := 1

	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		clause := ` AND (u.email ILIKE $` + strconv.Itoa(argIndex) +
			` OR p.first_name ILIKE $` + strconv.Itoa(argIndex) +
			` OR p.last_name ILIKE $` + strconv.Itoa(argIndex) + `)`
		query += clause
		countQuery += clause
		args = append(args, "%"+search+"%")
		argIndex++
	}
	if city := strings.TrimSpace(r.URL.Query().Get("city")); city != "" {
		clause := ` AND p.current_city ILIKE $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, "%"+city+"%")
		argIndex++
	}
	if verified := r.URL.Query().Get("verified"); verified != "" {
		clause := ` AND u.email_verified = $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, verified == "true")
		argIndex++
	}
	if banned := r.URL.Query().Get("banned"); banned != "" {
		clause := ` AND u.is_banned = $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, banned == "true")
		argIndex++
	}

	var total int
	if err := h.db.GetContext(r.Context(), &total, countQuery, args...); err != nil {
		log.Error().Err(err).Msg("failed to count users")
		response.InternalError(w)
		return
	}

	query += ` ORDER BY u.created_at DESC LIMIT $` + strconv.Itoa(argIndex) + ` OFFSET $` + strconv.Itoa(argIndex+1)
	args = append(args, pageSize, (page-1)*pageSize)

	users := []UserListItem{}
	if err := h.db.SelectContext(r.Context(), &users, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list users")
		response.InternalError(w)
		return
	}

	totalPages := (total + pageSize - 1) / pageSize
	response.OK(w, UserListResponse{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// GetByID godoc
// @Summary Get user
// @Description Returns a single user with profile data
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=UserListItem}
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	query := `
		SELECT u.id, u.email, p.first_name, p.last_name, p.current_city,
		       u.email_verified, u.phone_verified, u.is_banned, u.ban_reason,
		       u.created_at, u.last_login_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id AND p.is_deleted = false
		WHERE u.id = $1 AND u.is_deleted = false`

	var item UserListItem
	if err := h.db.GetContext(r.Context(), &item, query, id); err != nil {
		response.NotFound(w, "User not found")
		return
	}

	response.OK(w, item)
}

// Ban godoc
// @Summary Ban user
// @Description Bans a user with a required reason
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body BanRequest true "Ban reason"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/ban [post]
func (h *UserHandler) Ban(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req BanRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if details := validator.Validate(&req); details != nil {
		response.ValidationError(w, details)
		return
	}

	if !h.resolveUser(w, r, id) {
		return
	}
	if err := h.users.SetBanned(r.Context(), id, true, req.Reason); err != nil {
		log.Error().Err(err).Msg("failed to ban user")
		response.InternalError(w)
		return
	}

	h.audit(r, "user.ban", id, req.Reason)
	response.OKWithMessage(w, "User banned", nil)
}

// Unban godoc
// @Summary Unban user
// @Description Removes the ban from a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/unban [post]
func (h *UserHandler) Unban(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if !h.resolveUser(w, r, id) {
		return
	}
	if err := h.users.SetBanned(r.Context(), id, false, ""); err != nil {
		log.Error().Err(err).Msg("failed to unban user")
		response.InternalError(w)
		return
	}

	h.audit(r, "user.unban", id, "")
	response.OKWithMessage(w, "User unbanned", nil)
}

// Verify godoc
// @Summary Verify user email
// @Description Marks a user's email as verified
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/verify [post]
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if !h.resolveUser(w, r, id) {
		return
	}
	if err := h.users.UpdateEmailVerified(r.Context(), id, true); err != nil {
		log.Error().Err(err).Msg("failed to verify user")
		response.InternalError(w)
		return
	}

	h.audit(r, "user.verify", id, "")
	response.OKWithMessage(w, "User verified", nil)
}

// Delete godoc
// @Summary Delete user
// @Description Soft-deletes a user account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if !h.resolveUser(w, r, id) {
		return
	}
	if err := h.users.SoftDelete(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("failed to delete user")
		response.InternalError(w)
		return
	}

	h.audit(r, "user.delete", id, "")
	response.OKWithMessage(w, "User deleted", nil)
}

func (h *UserHandler) audit(r *http.Request, action string, userID uuid.UUID, reason string) {
	adminID := GetAdminID(r.Context())
	adminUser, err := h.service.GetAdminByID(r.Context(), adminID)
	if err != nil || adminUser == nil {
		log.Warn().Str("action", action).Msg("audit skipped, admin not resolvable")
		return
	}
	h.service.LogAction(r.Context(), adminUser, action, "user", &userID, nil, nil, reason, r.RemoteAddr, r.UserAgent())
}
