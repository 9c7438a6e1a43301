package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents account role (matches user_role enum)
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// User represents an account row (matches users table)
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`

	// Verification flags
	EmailVerified bool `db:"email_verified"`
	PhoneVerified bool `db:"phone_verified"`

	// Moderation flags
	IsBanned  bool           `db:"is_banned"`
	BanReason sql.NullString `db:"ban_reason"`
	IsDeleted bool           `db:"is_deleted"`

	// Login tracking
	LastLoginAt sql.NullTime   `db:"last_login_at"`
	LastLoginIP sql.NullString `db:"last_login_ip"`

	// Timestamps
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsAdmin returns true for admin or super admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsActive returns true if the account can use the app
func (u *User) IsActive() bool {
	return !u.IsBanned && !u.IsDeleted
}
