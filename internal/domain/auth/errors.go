package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid link or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
