package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	// Create inserts a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByCode retrieves an employee by its upper-cased code.
	// Returns (nil, nil) when the code is unknown.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// List returns every employee in the directory
	List(ctx context.Context) ([]Employee, error)

	// Deactivate soft-disables an employee; the record itself is kept
	Deactivate(ctx context.Context, id string) error
}
