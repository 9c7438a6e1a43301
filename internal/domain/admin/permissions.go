package admin

// Permission represents an admin permission
type Permission string

const (
	// User management
	PermViewUsers   Permission = "users.view"
	PermBanUsers    Permission = "users.ban"
	PermVerifyUsers Permission = "users.verify"
	PermDeleteUsers Permission = "users.delete"

	// Trust scores
	PermViewTrustScores        Permission = "trust.view"
	PermRecalculateTrustScores Permission = "trust.recalculate"

	// System
	PermViewAuditLogs Permission = "audit.view"
	PermManageAdmins  Permission = "admins.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermViewUsers, PermBanUsers, PermVerifyUsers, PermDeleteUsers,
		PermViewTrustScores, PermRecalculateTrustScores,
		PermViewAuditLogs, PermManageAdmins,
	},
	RoleAdmin: {
		PermViewUsers, PermBanUsers, PermVerifyUsers,
		PermViewTrustScores, PermRecalculateTrustScores,
		PermViewAuditLogs,
	},
	RoleModerator: {
		PermViewUsers, PermBanUsers,
		PermViewTrustScores,
	},
	RoleSupport: {
		PermViewUsers,
		PermViewTrustScores,
	},
}
