package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy WindowPolicy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy WindowPolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		policy:               policy,
	}
}

// ClockAction implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockAction(ctx context.Context, req attendance.ClockActionRequest, now time.Time) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	switch attendance.Action(req.Action) {
	case attendance.ActionClockIn:
		return s.clockIn(ctx, req.EmployeeID, now)
	case attendance.ActionClockOut:
		return s.clockOut(ctx, req.EmployeeID, now)
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidAction
	}
}

func (s *AttendanceServiceImpl) clockIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	today := now.Format("2006-01-02")

	if !s.policy.CanClockIn(now) {
		// Punitive: the day is force-written as absent, replacing whatever
		// record exists, before the call fails.
		absent := attendance.Attendance{
			EmployeeID: employeeID,
			Date:       dateOnly(now),
			Status:     attendance.StatusAbsent,
		}
		if err := s.AttendanceRepository.Upsert(ctx, absent); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to write absent record: %w", err)
		}
		return attendance.AttendanceResponse{}, attendance.ErrClockInWindowClosed
	}

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance for today: %w", err)
	}

	// An absent marker has no clock-in time, so it does not block a later
	// in-window clock-in on the same day.
	if record != nil && record.ClockIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	clockIn := formatTimeOfDay(now)
	next := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       dateOnly(now),
		ClockIn:    &clockIn,
		Status:     attendance.StatusPresent,
		IsLate:     s.policy.IsLate(now),
	}

	if err := s.AttendanceRepository.Upsert(ctx, next); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return mapAttendanceToResponse(next), nil
}

func (s *AttendanceServiceImpl) clockOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	if !s.policy.CanClockOut(now) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutWindowClosed
	}

	// The shift crosses midnight: look for today's record first, then fall
	// back to yesterday's before concluding there is nothing open.
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, now.Format("2006-01-02"))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance for today: %w", err)
	}
	if record == nil {
		yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
		record, err = s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, yesterday)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance for yesterday: %w", err)
		}
	}

	if record == nil || record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	clockOut := formatTimeOfDay(now)
	record.ClockOut = &clockOut
	if s.policy.IsHalfDay(now) {
		record.IsHalfDay = true
		record.Status = attendance.StatusHalfDay
	} else {
		record.IsHalfDay = false
		record.Status = attendance.StatusPresent
	}

	if err := s.AttendanceRepository.Upsert(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return mapAttendanceToResponse(*record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{Attendance: responses}, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		ClockIn:    att.ClockIn,
		ClockOut:   att.ClockOut,
		Status:     string(att.Status),
		IsLate:     att.IsLate,
		IsHalfDay:  att.IsHalfDay,
	}
}

func formatTimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
