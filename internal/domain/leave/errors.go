package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrDuplicateRequest     = errors.New("leave already requested for this date")
	ErrInvalidStatus        = errors.New("invalid leave status")
)
