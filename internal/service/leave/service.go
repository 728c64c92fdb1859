package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// RequestLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	existing, err := s.LeaveRequestRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check existing leave request: %w", err)
	}
	// One request per employee per date, regardless of its status.
	if existing != nil {
		return leave.LeaveResponse{}, leave.ErrDuplicateRequest
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Type:        leave.LeaveType(req.Type),
		Reason:      req.Reason,
		Status:      leave.LeaveStatusPending,
		RequestedAt: time.Now(),
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// DecideLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) DecideLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	validStatuses := []string{
		string(leave.LeaveStatusApproved),
		string(leave.LeaveStatusRejected),
		string(leave.LeaveStatusPending),
	}
	if !validator.IsInSlice(req.Status, validStatuses) {
		return leave.LeaveResponse{}, leave.ErrInvalidStatus
	}

	// Overwrites in place; re-applying the same decision is a no-op success.
	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, req.EmployeeID, req.Date, leave.LeaveStatus(req.Status))
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveToResponse(updated), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeavesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveToResponse(req))
	}

	return leave.ListLeavesResponse{Leaves: responses}, nil
}

// mapLeaveToResponse converts a LeaveRequest entity to LeaveResponse
func mapLeaveToResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date.Format("2006-01-02"),
		Type:        string(req.Type),
		Reason:      req.Reason,
		Status:      string(req.Status),
		RequestedAt: req.RequestedAt.Format(time.RFC3339),
	}
}
