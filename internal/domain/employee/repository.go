package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no employee has the given id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListByDepartment returns the department's active employees ordered by name.
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	// ListActive returns every active employee ordered by name.
	ListActive(ctx context.Context) ([]Employee, error)
}
