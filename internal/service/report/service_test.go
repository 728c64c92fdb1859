package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
)

type fakeAttendanceRepo struct {
	listByMonthFn func(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
	return f.listByMonthFn(ctx, employeeID, month, year)
}

type fakeLeaveRepo struct {
	listApprovedFn func(ctx context.Context, employeeID string, month int, year int) ([]leave.LeaveRequest, error)
}

func (f *fakeLeaveRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, employeeID string, date string, status leave.LeaveStatus) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]leave.LeaveRequest, error) {
	return f.listApprovedFn(ctx, employeeID, month, year)
}

type fakeEmployeeRepo struct {
	getByIDFn func(ctx context.Context, id string) (employee.Employee, error)
	listFn    func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) GetByUniqueLink(ctx context.Context, uniqueLink string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.listFn(ctx)
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }

func noLeaves() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		listApprovedFn: func(ctx context.Context, employeeID string, month int, year int) ([]leave.LeaveRequest, error) {
			return nil, nil
		},
	}
}

func singleEmployee() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id, Name: "Asha"}, nil
		},
		listFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: "emp-1", Name: "Asha"}}, nil
		},
	}
}

func TestBuildReportUnknownEmployee(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, noLeaves(), &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	})

	_, err := svc.BuildReport(context.Background(), "ghost", 8, 2026)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBuildReportRejectsBadMonth(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, noLeaves(), singleEmployee())

	_, err := svc.BuildReport(context.Background(), "emp-1", 13, 2026)
	assert.Error(t, err)
}

func TestBuildReportZeroRecords(t *testing.T) {
	repo := &fakeAttendanceRepo{
		listByMonthFn: func(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
			return nil, nil
		},
	}
	svc := NewReportService(repo, noLeaves(), singleEmployee())

	result, err := svc.BuildReport(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalPresent)
	assert.Equal(t, 0, result.TotalLeaves)
	assert.Equal(t, 0, result.TotalHalfDays)
	assert.Equal(t, 0, result.TotalLateArrivals)
	assert.Empty(t, result.AttendanceDetails)
	assert.Equal(t, "Asha", result.EmployeeName)
}

func TestBuildReportCounts(t *testing.T) {
	records := []attendance.Attendance{
		// Complete present session, on time.
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-03"),
			ClockIn:    strPtr("21:05:00"),
			ClockOut:   strPtr("09:30:00"),
			Status:     attendance.StatusPresent,
		},
		// Late arrival, complete session.
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-04"),
			ClockIn:    strPtr("21:40:00"),
			ClockOut:   strPtr("09:30:00"),
			Status:     attendance.StatusPresent,
			IsLate:     true,
		},
		// Clocked in but never out: not a present day.
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-05"),
			ClockIn:    strPtr("21:05:00"),
			Status:     attendance.StatusPresent,
		},
		// Early departure reduced to a half day.
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-06"),
			ClockIn:    strPtr("21:05:00"),
			ClockOut:   strPtr("05:30:00"),
			Status:     attendance.StatusHalfDay,
			IsHalfDay:  true,
		},
		// Force-written absent marker.
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-07"),
			Status:     attendance.StatusAbsent,
		},
	}
	leaves := []leave.LeaveRequest{
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-10"),
			Type:       leave.LeaveTypeFullDay,
			Status:     leave.LeaveStatusApproved,
		},
		{
			EmployeeID: "emp-1",
			Date:       day(t, "2026-08-11"),
			Type:       leave.LeaveTypeHalfDay,
			Status:     leave.LeaveStatusApproved,
		},
	}

	attRepo := &fakeAttendanceRepo{
		listByMonthFn: func(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
			return records, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		listApprovedFn: func(ctx context.Context, employeeID string, month int, year int) ([]leave.LeaveRequest, error) {
			return leaves, nil
		},
	}
	svc := NewReportService(attRepo, leaveRepo, singleEmployee())

	result, err := svc.BuildReport(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPresent)
	assert.Equal(t, 1, result.TotalLeaves)
	// Half-day attendance plus the approved half-day leave.
	assert.Equal(t, 2, result.TotalHalfDays)
	assert.Equal(t, 1, result.TotalLateArrivals)
	assert.Len(t, result.AttendanceDetails, 5)
}

func TestBuildAllReports(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Asha"},
		{ID: "emp-2", Name: "Bilal"},
	}
	attRepo := &fakeAttendanceRepo{
		listByMonthFn: func(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
			if employeeID == "emp-1" {
				return []attendance.Attendance{{
					EmployeeID: "emp-1",
					Date:       day(t, "2026-08-03"),
					ClockIn:    strPtr("21:05:00"),
					ClockOut:   strPtr("09:30:00"),
					Status:     attendance.StatusPresent,
				}}, nil
			}
			return nil, nil
		},
	}
	empRepo := &fakeEmployeeRepo{
		listFn: func(ctx context.Context) ([]employee.Employee, error) {
			return employees, nil
		},
	}
	svc := NewReportService(attRepo, noLeaves(), empRepo)

	results, err := svc.BuildAllReports(context.Background(), 8, 2026)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].TotalPresent)
	assert.Equal(t, 0, results[1].TotalPresent)
	assert.Equal(t, "Bilal", results[1].EmployeeName)
}
