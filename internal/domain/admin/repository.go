package admin

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines admin data access
type Repository interface {
	CreateAdmin(ctx context.Context, admin *AdminUser) error
	GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error

	CreateAuditLog(ctx context.Context, entry *AuditLog) error
	ListAuditLogs(ctx context.Context, filter AuditFilter) ([]*AuditLog, int, error)
}

// AuditFilter for filtering audit logs
type AuditFilter struct {
	AdminID    *uuid.UUID
	Action     *string
	EntityType *string
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
	Offset     int
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAdmin(ctx context.Context, admin *AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, role, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Name,
		admin.IsActive,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	return err
}

func (r *repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	query := `SELECT * FROM admin_users WHERE id = $1`
	var admin AdminUser
	err := r.db.GetContext(ctx, &admin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error) {
	query := `SELECT * FROM admin_users WHERE email = $1`
	var admin AdminUser
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error {
	query := `UPDATE admin_users SET last_login_at = NOW(), last_login_ip = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, ip)
	return err
}

func (r *repository) CreateAuditLog(ctx context.Context, entry *AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, admin_id, admin_email, action, entity_type, entity_id, old_value, new_value, reason, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.AdminID,
		entry.AdminEmail,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.OldValue,
		entry.NewValue,
		entry.Reason,
		entry.IPAddress,
		entry.UserAgent,
		entry.CreatedAt,
	)
	return err
}

func (r *repository) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]*AuditLog, int, error) {
	query := `SELECT * FROM audit_logs WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM audit_logs WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.AdminID != nil {
		clause := ` AND admin_id = $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, *filter.AdminID)
		argIndex++
	}
	if filter.Action != nil {
		clause := ` AND action = $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, *filter.Action)
		argIndex++
	}
	if filter.EntityType != nil {
		clause := ` AND entity_type = $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, *filter.EntityType)
		argIndex++
	}
	if filter.FromDate != nil {
		clause := ` AND created_at >= $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, *filter.FromDate)
		argIndex++
	}
	if filter.ToDate != nil {
		clause := ` AND created_at <= $` + strconv.Itoa(argIndex)
		query += clause
		countQuery += clause
		args = append(args, *filter.ToDate)
		argIndex++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIndex) + ` OFFSET $` + strconv.Itoa(argIndex+1)
	args = append(args, limit, filter.Offset)

	var logs []*AuditLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
