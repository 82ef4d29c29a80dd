package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee. Duplicate IDs or emails surface as
	// ErrEmployeeIDExists / ErrEmailExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when no employee has the given ID
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// ExistsByIDOrEmail reports separately whether the ID or the email (case-insensitive) is taken
	ExistsByIDOrEmail(ctx context.Context, employeeID, email string) (idExists bool, emailExists bool, err error)

	// List returns every employee in registration order with PresentDays populated
	List(ctx context.Context) ([]Employee, error)

	// Delete returns ErrEmployeeNotFound when nothing was deleted
	Delete(ctx context.Context, employeeID string) error
}
