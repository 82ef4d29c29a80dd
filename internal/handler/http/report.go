package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/report"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

type ReportHandler interface {
	// ExportAttendance streams the attendance list as an xlsx workbook
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ExportAttendance handles GET /api/attendance/export?date=YYYY-MM-DD
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	filter, err := attendance.ParseAttendanceFilter(r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, export.Filename, report.ContentTypeXLSX, export.Content)
}
