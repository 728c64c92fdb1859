package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrUniqueLinkExists  = errors.New("employee with this link already exists")
	ErrInvalidUniqueLink = errors.New("invalid access link format")
)
