package console

import (
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

const (
	msgLoadingEmployees  = "Loading employees..."
	msgNoEmployees       = "No employees added yet."
	msgLoadingAttendance = "Loading attendance..."
	msgNoAttendance      = "No attendance records found."
)

type EmployeeForm struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

func (f EmployeeForm) request() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: f.EmployeeID,
		FullName:   f.FullName,
		Email:      f.Email,
		Department: f.Department,
	}
}

type AttendanceForm struct {
	EmployeeID string
	Date       string
	Status     string
}

func (f AttendanceForm) request() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		EmployeeID: f.EmployeeID,
		Date:       f.Date,
		Status:     f.Status,
	}
}

// State is everything the renderer needs. Snapshots handed out by App are copies.
type State struct {
	View View

	// Dashboard is nil until the first summary arrives
	Dashboard *dashboard.DashboardResponse

	Employees        []employee.EmployeeResponse
	EmployeesLoaded  bool
	Attendance       []attendance.AttendanceResponse
	AttendanceLoaded bool

	// FilterDate scopes the attendance list; empty means all dates
	FilterDate string

	EmployeeForm   EmployeeForm
	AttendanceForm AttendanceForm

	Banner BannerSnapshot
}

// EmployeesMessage is the placeholder for an empty employee table, or "" when rows exist
func (s State) EmployeesMessage() string {
	switch {
	case len(s.Employees) > 0:
		return ""
	case !s.EmployeesLoaded:
		return msgLoadingEmployees
	default:
		return msgNoEmployees
	}
}

// AttendanceMessage is the placeholder for an empty attendance table, or "" when rows exist
func (s State) AttendanceMessage() string {
	switch {
	case len(s.Attendance) > 0:
		return ""
	case !s.AttendanceLoaded:
		return msgLoadingAttendance
	default:
		return msgNoAttendance
	}
}

// SelectedEmployee returns the employee the attendance form points at
func (s State) SelectedEmployee() (employee.EmployeeResponse, bool) {
	for _, e := range s.Employees {
		if e.EmployeeID == s.AttendanceForm.EmployeeID {
			return e, true
		}
	}
	return employee.EmployeeResponse{}, false
}

func (s State) clone() State {
	out := s
	if s.Dashboard != nil {
		summary := *s.Dashboard
		out.Dashboard = &summary
	}
	out.Employees = append([]employee.EmployeeResponse(nil), s.Employees...)
	out.Attendance = append([]attendance.AttendanceResponse(nil), s.Attendance...)
	return out
}

// defaultEmployeeSelection keeps current when it is still listed, else picks the first employee
func defaultEmployeeSelection(current string, employees []employee.EmployeeResponse) string {
	for _, e := range employees {
		if e.EmployeeID == current {
			return current
		}
	}
	if len(employees) > 0 {
		return employees[0].EmployeeID
	}
	return ""
}
