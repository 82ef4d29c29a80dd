package report

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
)

type ReportService interface {
	// ExportAttendance renders the (optionally date-filtered) attendance list as xlsx
	ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (*AttendanceExport, error)
}
