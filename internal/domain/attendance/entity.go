package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

type Action string

const (
	ActionClockIn  Action = "clock-in"
	ActionClockOut Action = "clock-out"
)

// Attendance is keyed by (EmployeeID, Date). Clock times are wall-clock-local
// "HH:MM:SS" strings; nil means the action has not happened yet. A record with
// a ClockOut always had a ClockIn first, except the force-written absent
// marker which has neither.
type Attendance struct {
	EmployeeID string
	Date       time.Time
	ClockIn    *string
	ClockOut   *string
	Status     Status
	IsLate     bool
	IsHalfDay  bool
}
