package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewEmployeeRepository(db *database.SQLiteDB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const selectEmployee = `
	SELECT e.employee_id, e.full_name, e.email, e.department, e.created_at,
		COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present_days
	FROM employees e
	LEFT JOIN attendances a ON a.employee_id = e.employee_id
`

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	_, err := q.ExecContext(ctx,
		`INSERT INTO employees (employee_id, full_name, email, department) VALUES (?, ?, ?, ?)`,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if violatesEmailIndex(err) {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e.GetByID(ctx, newEmployee.EmployeeID)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := selectEmployee + ` WHERE e.employee_id = ? GROUP BY e.employee_id`

	var emp employee.Employee
	err := q.QueryRowContext(ctx, query, employeeID).Scan(
		&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, timestamp{&emp.CreatedAt}, &emp.PresentDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
			EXISTS (SELECT 1 FROM employees WHERE employee_id = ?),
			EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER(?))
	`

	var idExists, emailExists bool
	if err := q.QueryRowContext(ctx, query, employeeID, email).Scan(&idExists, &emailExists); err != nil {
		return false, false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return idExists, emailExists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := selectEmployee + ` GROUP BY e.employee_id ORDER BY e.created_at ASC, e.rowid ASC`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, timestamp{&emp.CreatedAt}, &emp.PresentDays,
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

	result, err := q.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
