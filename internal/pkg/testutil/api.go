package testutil

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	handler "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hrms-lite/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	reportService "github.com/cmlabs-hris/hrms-lite/internal/service/report"
)

// NewAPIServer serves the full router over a fresh in-memory store. now fixes the
// server clock; pass nil for time.Now.
func NewAPIServer(t testing.TB, now func() time.Time) (*httptest.Server, *Store) {
	t.Helper()

	store := NewSQLiteStore(t)

	router := handler.NewRouter(
		handler.RouterOptions{
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		handler.NewEmployeeHandler(employeeService.NewEmployeeService(store.Tx, store.Employees, store.Attendance)),
		handler.NewAttendanceHandler(attendanceService.NewAttendanceService(store.Attendance, store.Employees)),
		handler.NewDashboardHandler(dashboardService.NewDashboardService(store.Dashboard, now, time.UTC)),
		handler.NewReportHandler(reportService.NewReportService(store.Attendance, now)),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}
