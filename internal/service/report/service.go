package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// BuildReport implements report.ReportService.
func (s *ReportServiceImpl) BuildReport(ctx context.Context, employeeID string, month int, year int) (report.MonthlyReport, error) {
	req := report.MonthlyReportRequest{EmployeeID: &employeeID, Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.MonthlyReport{}, employee.ErrEmployeeNotFound
		}
		return report.MonthlyReport{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	return s.buildFor(ctx, emp, month, year)
}

// BuildAllReports implements report.ReportService.
func (s *ReportServiceImpl) BuildAllReports(ctx context.Context, month int, year int) ([]report.MonthlyReport, error) {
	req := report.MonthlyReportRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	reports := make([]report.MonthlyReport, 0, len(employees))
	for _, emp := range employees {
		r, err := s.buildFor(ctx, emp, month, year)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

func (s *ReportServiceImpl) buildFor(ctx context.Context, emp employee.Employee, month int, year int) (report.MonthlyReport, error) {
	records, err := s.AttendanceRepository.ListByEmployeeAndMonth(ctx, emp.ID, month, year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get attendance for month: %w", err)
	}

	leaves, err := s.LeaveRequestRepository.ListApprovedByEmployeeAndMonth(ctx, emp.ID, month, year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get approved leaves for month: %w", err)
	}

	result := report.MonthlyReport{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		Month:             month,
		Year:              year,
		AttendanceDetails: make([]attendance.AttendanceResponse, 0, len(records)),
	}

	for _, att := range records {
		// A present day counts only when the session is complete.
		if att.Status == attendance.StatusPresent && att.ClockIn != nil && att.ClockOut != nil {
			result.TotalPresent++
		}
		if att.IsHalfDay || att.Status == attendance.StatusHalfDay {
			result.TotalHalfDays++
		}
		if att.IsLate {
			result.TotalLateArrivals++
		}
		result.AttendanceDetails = append(result.AttendanceDetails, attendance.AttendanceResponse{
			EmployeeID: att.EmployeeID,
			Date:       att.Date.Format("2006-01-02"),
			ClockIn:    att.ClockIn,
			ClockOut:   att.ClockOut,
			Status:     string(att.Status),
			IsLate:     att.IsLate,
			IsHalfDay:  att.IsHalfDay,
		})
	}

	for _, lv := range leaves {
		switch lv.Type {
		case leave.LeaveTypeFullDay:
			result.TotalLeaves++
		case leave.LeaveTypeHalfDay:
			result.TotalHalfDays++
		}
	}

	return result, nil
}
