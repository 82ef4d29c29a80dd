package dashboard

import (
	"context"
	"time"
)

// AttendanceStats combines present/absent counts
type AttendanceStats struct {
	Present int64
	Absent  int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the number of registered employees
	CountEmployees(ctx context.Context) (int64, error)

	// GetAttendanceStatsByDay returns present/absent for a day in single query
	GetAttendanceStatsByDay(ctx context.Context, date time.Time) (*AttendanceStats, error)

	// CountAttendance returns the number of attendance records of all time
	CountAttendance(ctx context.Context) (int64, error)
}
