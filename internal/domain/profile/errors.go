package profile

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
	ErrProfileDeleted       = errors.New("profile has been deleted")
	ErrProfileValidation    = errors.New("profile fields failed validation")
	ErrStorageUnavailable   = errors.New("image storage is not configured")
)
