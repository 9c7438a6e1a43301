package admin

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Role represents admin role
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
	RoleSupport    Role = "support"
)

// AdminUser represents an admin panel user
type AdminUser struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Role         Role           `db:"role" json:"role"`
	Name         string         `db:"name" json:"name"`
	IsActive     bool           `db:"is_active" json:"isActive"`
	LastLoginAt  sql.NullTime   `db:"last_login_at" json:"lastLoginAt,omitempty"`
	LastLoginIP  sql.NullString `db:"last_login_ip" json:"lastLoginIp,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}

// HasPermission checks if admin has a specific permission
func (a *AdminUser) HasPermission(perm Permission) bool {
	permissions, ok := RolePermissions[a.Role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// AuditLog represents an admin action log entry
type AuditLog struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	AdminID    uuid.NullUUID   `db:"admin_id" json:"adminId,omitempty"`
	AdminEmail string          `db:"admin_email" json:"adminEmail"`
	Action     string          `db:"action" json:"action"`
	EntityType string          `db:"entity_type" json:"entityType"`
	EntityID   uuid.NullUUID   `db:"entity_id" json:"entityId,omitempty"`
	OldValue   json.RawMessage `db:"old_value" json:"oldValue,omitempty"`
	NewValue   json.RawMessage `db:"new_value" json:"newValue,omitempty"`
	Reason     sql.NullString  `db:"reason" json:"reason,omitempty"`
	IPAddress  sql.NullString  `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent  sql.NullString  `db:"user_agent" json:"userAgent,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}
