package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrAdminNotFound = errors.New("admin not found")
	ErrConflict      = errors.New("resource already exists")
)
