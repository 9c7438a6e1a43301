package admin

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse returned on successful admin login
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Admin     *AdminUser `json:"admin"`
}

// BanRequest for banning a user
type BanRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// UserListItem is a flattened user row for the admin list view
type UserListItem struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Email         string     `db:"email" json:"email"`
	FirstName     *string    `db:"first_name" json:"firstName,omitempty"`
	LastName      *string    `db:"last_name" json:"lastName,omitempty"`
	CurrentCity   *string    `db:"current_city" json:"currentCity,omitempty"`
	EmailVerified bool       `db:"email_verified" json:"emailVerified"`
	PhoneVerified bool       `db:"phone_verified" json:"phoneVerified"`
	IsBanned      bool       `db:"is_banned" json:"isBanned"`
	BanReason     *string    `db:"ban_reason" json:"banReason,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	LastLoginAt   *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

// UserListResponse is a paginated user list
type UserListResponse struct {
	Users      []UserListItem `json:"users"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// AuditLogListResponse is a paginated audit log list
type AuditLogListResponse struct {
	Logs  []*AuditLog `json:"logs"`
	Total int         `json:"total"`
}
