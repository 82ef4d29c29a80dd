package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/report"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	attendanceSheet = "Attendance"
	summarySheet    = "Summary"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, now func() time.Time) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{attendanceRepo: attendanceRepo, now: now}
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (*report.AttendanceExport, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it instead of leaving an empty sheet behind
	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := []interface{}{"Date", "Employee ID", "Full Name", "Status"}
	if err := f.SetSheetRow(attendanceSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	var present, absent int
	for i, rec := range records {
		row := []interface{}{rec.Date.Format(validator.DateLayout), rec.EmployeeID, rec.FullName, string(rec.Status)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		switch rec.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	scope := "All dates"
	if filter.Date != nil {
		scope = filter.Date.Format(validator.DateLayout)
	}
	summary := [][]interface{}{
		{"Scope", scope},
		{"Present", present},
		{"Absent", absent},
		{"Total", len(records)},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &report.AttendanceExport{
		Filename: fmt.Sprintf("attendance_%s_%s.xlsx", filenameScope(filter), s.now().Format("20060102_150405")),
		Content:  buf.Bytes(),
	}, nil
}

func filenameScope(filter attendance.AttendanceFilter) string {
	if filter.Date == nil {
		return "all"
	}
	return filter.Date.Format("20060102")
}
