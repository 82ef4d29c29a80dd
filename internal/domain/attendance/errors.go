package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this date")
	ErrInvalidDateFilter       = errors.New("invalid date filter, expected YYYY-MM-DD")
)
