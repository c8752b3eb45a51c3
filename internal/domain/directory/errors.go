package directory

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateUsername = errors.New("username already taken")
)
