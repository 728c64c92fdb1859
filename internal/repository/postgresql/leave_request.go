package postgresql

import (
	"context"
	"fmt"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

// GetByEmployeeAndDate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT employee_id, date, type, reason, status, requested_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND date = $2
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&req.EmployeeID, &req.Date, &req.Type, &req.Reason, &req.Status, &req.RequestedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No request for this employee on this date
		}
		return nil, fmt.Errorf("failed to get leave request by employee and date: %w", err)
	}

	return &req, nil
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (employee_id, date, type, reason, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		req.EmployeeID,
		req.Date,
		req.Type,
		req.Reason,
		req.Status,
		req.RequestedAt,
	)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, employeeID string, date string, status leave.LeaveStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1
		WHERE employee_id = $2
		  AND date = $3
		RETURNING employee_id, date, type, reason, status, requested_at
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, employeeID, date).Scan(
		&req.EmployeeID, &req.Date, &req.Type, &req.Reason, &req.Status, &req.RequestedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT employee_id, date, type, reason, status, requested_at
		FROM leave_requests
		WHERE %s
		ORDER BY requested_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.EmployeeID, &req.Date, &req.Type, &req.Reason, &req.Status, &req.RequestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// ListApprovedByEmployeeAndMonth implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListApprovedByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT employee_id, date, type, reason, status, requested_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $2
		  AND EXTRACT(MONTH FROM date) = $3
		  AND EXTRACT(YEAR FROM date) = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveStatusApproved, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leaves by month: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.EmployeeID, &req.Date, &req.Type, &req.Reason, &req.Status, &req.RequestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
