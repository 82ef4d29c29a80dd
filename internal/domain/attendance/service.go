package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance records a Present/Absent status for an existing employee
	MarkAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance lists records, optionally restricted to one date
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
