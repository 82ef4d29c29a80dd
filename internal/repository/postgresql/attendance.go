package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendances (id, employee_id, date, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, employee_id, date, status, created_at
		)
		SELECT i.id, i.employee_id, i.date, i.status, i.created_at, e.full_name
		FROM inserted i
		JOIN employees e ON e.employee_id = i.employee_id
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		newAttendance.ID, newAttendance.EmployeeID, newAttendance.Date, newAttendance.Status,
	).Scan(&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.CreatedAt, &created.FullName)
	if err != nil {
		if _, ok := constraintViolation(err, pgUniqueViolation); ok {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
		if _, ok := constraintViolation(err, pgForeignKeyViolation); ok {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	return exists, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
		FROM attendances a
		JOIN employees e ON e.employee_id = a.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.created_at DESC, a.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt, &att.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}
	return tag.RowsAffected(), nil
}
