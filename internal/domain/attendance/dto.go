package attendance

import (
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockActionRequest struct {
	EmployeeID string `json:"employeeId"`
	Action     string `json:"action"`
}

func (r *ClockActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clockIn"`
	ClockOut   *string `json:"clockOut"`
	Status     string  `json:"status"`
	IsLate     bool    `json:"isLate"`
	IsHalfDay  bool    `json:"isHalfDay"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}
