package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a record; a second record for the same employee and date
	// surfaces as ErrAttendanceAlreadyMarked
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// ExistsByEmployeeAndDate is used to prevent marking the same day twice
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// List returns records matching filter, newest date first, with FullName joined in
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// DeleteByEmployeeID removes every record of an employee and returns how many were removed
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
