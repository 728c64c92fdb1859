package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/auth"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUniqueLinkExists):
		Conflict(w, "Employee with this link already exists")
	case errors.Is(err, employee.ErrInvalidUniqueLink):
		BadRequest(w, "Invalid access link format", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrClockInWindowClosed),
		errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrClockOutWindowClosed),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrDuplicateRequest):
		Conflict(w, "Leave already requested for this date")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave status", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
