package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// CreateEmployee registers a new employee with a hashed credential
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// GetEmployeeByLink resolves an employee from the self-service access link
	GetEmployeeByLink(ctx context.Context, uniqueLink string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee without cascading to history
	DeleteEmployee(ctx context.Context, id string) error
}
