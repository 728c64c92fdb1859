package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrClockInWindowClosed = errors.New("clock-in window closed (21:00-22:00), marked as absent for today")
	ErrAlreadyClockedIn    = errors.New("already clocked in today")

	// Clock-out errors
	ErrClockOutWindowClosed = errors.New("clock-out expired, available only until 10:00")
	ErrNotClockedIn         = errors.New("please clock in first")
	ErrAlreadyClockedOut    = errors.New("already clocked out")

	// General errors
	ErrInvalidAction = errors.New("invalid action")
)
