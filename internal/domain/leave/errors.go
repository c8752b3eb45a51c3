package leave

import "errors"

var (
	ErrInsufficientBalance = errors.New("requested days exceed available balance")
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTypeNotFound        = errors.New("leave type not found")
	ErrAlreadyDecided      = errors.New("leave request already decided")
	ErrInvalidStatus       = errors.New("invalid target status")
)
