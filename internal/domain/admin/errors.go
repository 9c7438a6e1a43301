package admin

import "errors"

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrUserNotFound       = errors.New("user not found")
)
