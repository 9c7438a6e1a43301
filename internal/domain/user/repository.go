package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines user data access interface
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateEmailVerified(ctx context.Context, id uuid.UUID, verified bool) error
	UpdatePhoneVerified(ctx context.Context, id uuid.UUID, verified bool) error
	SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new user repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, email, password_hash, role, email_verified, phone_verified,
	is_banned, ban_reason, is_deleted, last_login_at, last_login_ip,
	created_at, updated_at
`

// Create creates a new user
func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, email_verified, phone_verified, is_banned, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.EmailVerified,
		user.PhoneVerified,
		user.IsBanned,
		user.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("user repository create: %w", err)
	}

	return nil
}

// GetByID returns user by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = false`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns user by email
func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_deleted = false`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UpdatePassword updates user password hash
func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

// UpdateEmailVerified updates email verification flag
func (r *repository) UpdateEmailVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE users SET email_verified = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, verified)
	return err
}

// UpdatePhoneVerified updates phone verification flag
func (r *repository) UpdatePhoneVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE users SET phone_verified = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, verified)
	return err
}

// SetBanned bans or unbans a user
func (r *repository) SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason string) error {
	query := `UPDATE users SET is_banned = $2, ban_reason = NULLIF($3, ''), updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, banned, reason)
	return err
}

// SoftDelete marks a user deleted without removing the row
func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET is_deleted = true, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// UpdateLastLogin updates last login timestamp and IP
func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error {
	query := `UPDATE users SET last_login_at = $2, last_login_ip = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, time.Now(), ip)
	return err
}
