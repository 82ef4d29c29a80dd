// Package testutil wires in-memory SQLite stores for tests across packages.
package testutil

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/sqlite"
	"github.com/stretchr/testify/require"
)

// Store bundles repositories backed by one in-memory database
type Store struct {
	DB         *database.SQLiteDB
	Tx         database.Transactor
	Employees  employee.EmployeeRepository
	Attendance attendance.AttendanceRepository
	Dashboard  dashboard.DashboardRepository
}

// NewSQLiteStore opens and migrates a fresh in-memory database closed on test cleanup
func NewSQLiteStore(t testing.TB) *Store {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	return &Store{
		DB:         db,
		Tx:         sqlite.NewTransactor(db),
		Employees:  sqlite.NewEmployeeRepository(db),
		Attendance: sqlite.NewAttendanceRepository(db),
		Dashboard:  sqlite.NewDashboardRepository(db),
	}
}
