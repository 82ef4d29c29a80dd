package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates and registers a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees lists all employees with their present-day counts
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)

	// DeleteEmployee removes the employee together with their attendance records
	DeleteEmployee(ctx context.Context, employeeID string) error
}
