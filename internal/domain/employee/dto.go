package employee

import (
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	UniqueLink  string `json:"uniqueLink"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.UniqueLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "uniqueLink",
			Message: "uniqueLink is required",
		})
	} else if !validator.IsValidAccessLink(r.UniqueLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "uniqueLink",
			Message: "uniqueLink must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UniqueLink  string `json:"uniqueLink"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
