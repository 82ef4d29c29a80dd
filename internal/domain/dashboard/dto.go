package dashboard

// DashboardResponse is the summary shown on the landing view
type DashboardResponse struct {
	EmployeeCount          int64                   `json:"employeeCount"`
	AttendanceToday        AttendanceTodayResponse `json:"attendanceToday"`
	TotalAttendanceRecords int64                   `json:"totalAttendanceRecords"`
	Today                  string                  `json:"today"` // Format: "YYYY-MM-DD"
}

// AttendanceTodayResponse counts records for the server's current date
type AttendanceTodayResponse struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}
