package auth

import (
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/validator"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeLoginRequest struct {
	UniqueLink string `json:"uniqueLink"`
	Password   string `json:"password"`
}

func (r *EmployeeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UniqueLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "uniqueLink",
			Message: "uniqueLink is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"accessToken"`
	AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
	EmployeeID           string `json:"employeeId,omitempty"`
}
