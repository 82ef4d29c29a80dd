package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	tx             database.Transactor
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	idExists, emailExists, err := s.employeeRepo.ExistsByIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if idExists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.EmployeeID, "department", created.Department)
	return employee.NewEmployeeResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := employee.ListEmployeeResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		result.Employees = append(result.Employees, employee.NewEmployeeResponse(emp))
	}
	return result, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	var removedRecords int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}

		removed, err := s.attendanceRepo.DeleteByEmployeeID(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		removedRecords = removed

		return s.employeeRepo.Delete(ctx, employeeID)
	})
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Error("Failed to delete employee", "employee_id", employeeID, "error", err)
		}
		return err
	}

	slog.Info("Employee deleted", "employee_id", employeeID, "attendance_removed", removedRecords)
	return nil
}
