package leave

import (
	"context"
)

// LeaveRequestRepository defines data access methods for leave requests,
// keyed by (employee id, date). Dates are "YYYY-MM-DD" strings at this
// boundary.
type LeaveRequestRepository interface {
	// GetByEmployeeAndDate retrieves the request for an employee on a date.
	// Returns nil when no request exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*LeaveRequest, error)

	// Create inserts a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// UpdateStatus overwrites the status of an existing request in place
	UpdateStatus(ctx context.Context, employeeID string, date string, status LeaveStatus) (LeaveRequest, error)

	// List retrieves leave requests with optional employee/status filters
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	// ListApprovedByEmployeeAndMonth retrieves one employee's approved
	// leaves for a month
	ListApprovedByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]LeaveRequest, error)
}
