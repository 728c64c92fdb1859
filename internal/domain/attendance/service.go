package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockAction applies a clock-in or clock-out for the employee at the
	// given instant, enforcing the clock window policy. An out-of-window
	// clock-in force-writes an absent record before failing.
	ClockAction(ctx context.Context, req ClockActionRequest, now time.Time) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with optional filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
