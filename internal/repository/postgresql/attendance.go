package postgresql

import (
	"context"
	"fmt"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, date, clock_in, clock_out, status, is_late, is_half_day
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.Status, &att.IsLate, &att.IsHalfDay,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this employee on this date
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	// Keyed replace: last write for the same (employee_id, date) wins.
	query := `
		INSERT INTO attendance (employee_id, date, clock_in, clock_out, status, is_late, is_half_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in    = EXCLUDED.clock_in,
			clock_out   = EXCLUDED.clock_out,
			status      = EXCLUDED.status,
			is_late     = EXCLUDED.is_late,
			is_half_day = EXCLUDED.is_half_day
	`

	_, err := q.Exec(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.ClockOut,
		att.Status,
		att.IsLate,
		att.IsHalfDay,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT employee_id, date, clock_in, clock_out, status, is_late, is_half_day
		FROM attendance
		WHERE %s
		ORDER BY date DESC, employee_id
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.Status, &att.IsLate, &att.IsHalfDay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, date, clock_in, clock_out, status, is_late, is_half_day
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.Status, &att.IsLate, &att.IsHalfDay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
