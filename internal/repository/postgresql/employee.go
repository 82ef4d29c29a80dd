package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING employee_id, full_name, email, department, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(&created.EmployeeID, &created.FullName, &created.Email, &created.Department, &created.CreatedAt)
	if err != nil {
		if constraint, ok := constraintViolation(err, pgUniqueViolation); ok {
			if constraint == "idx_employees_email_lower" {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.employee_id, e.full_name, e.email, e.department, e.created_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.employee_id
		WHERE e.employee_id = $1
		GROUP BY e.employee_id
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.PresentDays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// ExistsByIDOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByIDOrEmail(ctx context.Context, employeeID, email string) (bool, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			EXISTS (SELECT 1 FROM employees WHERE employee_id = $1),
			EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER($2))
	`

	var idExists, emailExists bool
	if err := q.QueryRow(ctx, query, employeeID, email).Scan(&idExists, &emailExists); err != nil {
		return false, false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return idExists, emailExists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.employee_id, e.full_name, e.email, e.department, e.created_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.employee_id
		GROUP BY e.employee_id
		ORDER BY e.created_at ASC, e.employee_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.PresentDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
