package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeFullDay LeaveType = "full-day"
	LeaveTypeHalfDay LeaveType = "half-day"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is keyed by (EmployeeID, Date); a second request for the same
// key is rejected regardless of the first one's status. Requests never
// auto-transition and are never deleted.
type LeaveRequest struct {
	EmployeeID  string
	Date        time.Time
	Type        LeaveType
	Reason      string
	Status      LeaveStatus
	RequestedAt time.Time
}
