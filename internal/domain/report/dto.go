package report

import (
	"fmt"
	"time"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	EmployeeID *string
	Month      int
	Year       int
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyReport is derived on every request from attendance records and
// approved leaves; it is never persisted.
type MonthlyReport struct {
	EmployeeID        string                          `json:"employeeId"`
	EmployeeName      string                          `json:"employeeName"`
	Month             int                             `json:"month"`
	Year              int                             `json:"year"`
	TotalPresent      int                             `json:"totalPresent"`
	TotalLeaves       int                             `json:"totalLeaves"`
	TotalHalfDays     int                             `json:"totalHalfDays"`
	TotalLateArrivals int                             `json:"totalLateArrivals"`
	AttendanceDetails []attendance.AttendanceResponse `json:"attendanceDetails"`
}
