package leave

import (
	"context"
)

// LeaveService defines business logic for the leave workflow
type LeaveService interface {
	// RequestLeave creates a pending request; one request per employee per
	// date regardless of status
	RequestLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// DecideLeave overwrites the status of an existing request. Re-applying
	// the same decision is an idempotent success.
	DecideLeave(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// ListLeaves retrieves leave requests with optional filters
	ListLeaves(ctx context.Context, filter LeaveFilter) (ListLeavesResponse, error)
}
