package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type attendanceRepository struct {
	db *database.SQLiteDB
}

func NewAttendanceRepository(db *database.SQLiteDB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const selectAttendance = `
	SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
	FROM attendances a
	JOIN employees e ON e.employee_id = a.employee_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (attendance.Attendance, error) {
	var (
		att  attendance.Attendance
		date string
	)
	if err := row.Scan(&att.ID, &att.EmployeeID, &date, &att.Status, timestamp{&att.CreatedAt}, &att.FullName); err != nil {
		return attendance.Attendance{}, err
	}
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("invalid stored attendance date %q", date)
	}
	att.Date = parsed
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	_, err := q.ExecContext(ctx,
		`INSERT INTO attendances (id, employee_id, date, status) VALUES (?, ?, ?, ?)`,
		newAttendance.ID, newAttendance.EmployeeID,
		newAttendance.Date.Format(validator.DateLayout), string(newAttendance.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	created, err := scanAttendance(q.QueryRowContext(ctx, selectAttendance+` WHERE a.id = ?`, newAttendance.ID))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read created attendance: %w", err)
	}
	return created, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendances WHERE employee_id = ? AND date = ?)`,
		employeeID, date.Format(validator.DateLayout),
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
		args       []any
	)
	if filter.Date != nil {
		conditions = append(conditions, "a.date = ?")
		args = append(args, filter.Date.Format(validator.DateLayout))
	}

	query := selectAttendance
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.created_at DESC, a.rowid DESC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
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

	result, err := q.ExecContext(ctx, `DELETE FROM attendances WHERE employee_id = ?`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}
	return result.RowsAffected()
}
