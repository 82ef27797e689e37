package employee

import "context"

// EmployeeService manages the employee directory built up by uploads.
type EmployeeService interface {
	// List returns every employee in the directory
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Deactivate soft-disables an employee; its punch history is kept
	Deactivate(ctx context.Context, id string) error
}
