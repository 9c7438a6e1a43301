package preferences

import "errors"

var (
	ErrPreferencesNotFound   = errors.New("partner preferences not found")
	ErrPreferencesValidation = errors.New("partner preferences failed validation")
)
