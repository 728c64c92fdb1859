package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Records are keyed by (employee id, date); dates are "YYYY-MM-DD" strings at
// this boundary to match the wire format.
type AttendanceRepository interface {
	// GetByEmployeeAndDate retrieves the record for an employee on a date.
	// Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Upsert inserts the record or replaces the existing one for the same
	// (employee id, date) key.
	Upsert(ctx context.Context, att Attendance) error

	// List retrieves attendance records with optional employee/date filters
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListByEmployeeAndMonth retrieves one employee's records for a month
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]Attendance, error)
}
