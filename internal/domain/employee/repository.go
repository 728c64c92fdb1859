package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUniqueLink retrieves an employee by the self-service access link
	GetByUniqueLink(ctx context.Context, uniqueLink string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// Delete removes an employee record. Historical attendance and leave
	// records are intentionally left in place.
	Delete(ctx context.Context, id string) error
}
