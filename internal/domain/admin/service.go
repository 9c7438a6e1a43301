package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/pkg/password"
)

// Service handles admin authentication and audit logging
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates admin service
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login authenticates an admin and returns a signed token
func (s *Service) Login(ctx context.Context, req *LoginRequest, ip string) (*LoginResponse, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrAdminInactive
	}

	if !password.Verify(req.Password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID, ip); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID.String()).Msg("failed to record admin login")
	}

	s.LogAction(ctx, admin, "admin.login", "admin", &admin.ID, nil, nil, "", ip, "")

	return &LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwt.ttl),
		Admin:     admin,
	}, nil
}

// GetAdminByID loads an admin by ID
func (s *Service) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	return s.repo.GetAdminByID(ctx, id)
}

// LogAction records an audit log entry. Audit failures are logged but never
// fail the underlying operation.
func (s *Service) LogAction(ctx context.Context, admin *AdminUser, action, entityType string, entityID *uuid.UUID, oldValue, newValue interface{}, reason, ip, userAgent string) {
	entry := &AuditLog{
		ID:         uuid.New(),
		AdminEmail: admin.Email,
		Action:     action,
		EntityType: entityType,
		Reason:     sql.NullString{String: reason, Valid: reason != ""},
		IPAddress:  sql.NullString{String: ip, Valid: ip != ""},
		UserAgent:  sql.NullString{String: userAgent, Valid: userAgent != ""},
		CreatedAt:  time.Now(),
	}
	entry.AdminID = uuid.NullUUID{UUID: admin.ID, Valid: true}
	if entityID != nil {
		entry.EntityID = uuid.NullUUID{UUID: *entityID, Valid: true}
	}
	if oldValue != nil {
		if b, err := json.Marshal(oldValue); err == nil {
			entry.OldValue = b
		}
	}
	if newValue != nil {
		if b, err := json.Marshal(newValue); err == nil {
			entry.NewValue = b
		}
	}

	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to write audit log")
	}
}

// ListAuditLogs returns audit log entries matching the filter
func (s *Service) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]*AuditLog, int, error) {
	return s.repo.ListAuditLogs(ctx, filter)
}
