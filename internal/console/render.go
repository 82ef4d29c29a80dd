package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Renderer draws a state snapshot
type Renderer interface {
	Render(w io.Writer, s State) error
}

// TextRenderer draws plain-text tables
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, s State) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	today := "-"
	if s.Dashboard != nil {
		today = s.Dashboard.Today
	}
	fmt.Fprintf(tw, "HRMS Lite | %s\tToday: %s\n", s.View.Title(), today)
	fmt.Fprintln(tw, navigation(s.View))

	if s.Banner.Visible {
		fmt.Fprintf(tw, "[%s] %s\n", s.Banner.Kind, s.Banner.Message)
	}
	fmt.Fprintln(tw)

	switch s.View {
	case ViewEmployees:
		renderEmployees(tw, s)
	case ViewAttendance:
		renderAttendance(tw, s)
	default:
		renderDashboard(tw, s)
	}

	return tw.Flush()
}

func navigation(active View) string {
	parts := make([]string, 0, len(Views))
	for _, v := range Views {
		if v == active {
			parts = append(parts, "["+string(v)+"]")
			continue
		}
		parts = append(parts, string(v))
	}
	return strings.Join(parts, " ")
}

func renderDashboard(w io.Writer, s State) {
	if s.Dashboard == nil {
		fmt.Fprintln(w, "Loading dashboard...")
		return
	}
	d := s.Dashboard
	fmt.Fprintf(w, "Total employees\t%d\n", d.EmployeeCount)
	fmt.Fprintf(w, "Present today\t%d\n", d.AttendanceToday.Present)
	fmt.Fprintf(w, "Absent today\t%d\n", d.AttendanceToday.Absent)
	fmt.Fprintf(w, "Attendance records\t%d\n", d.TotalAttendanceRecords)
}

func renderEmployees(w io.Writer, s State) {
	if msg := s.EmployeesMessage(); msg != "" {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, "EMPLOYEE ID\tFULL NAME\tEMAIL\tDEPARTMENT\tPRESENT DAYS")
	for _, e := range s.Employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.EmployeeID, e.FullName, e.Email, e.Department, e.PresentDays)
	}
}

func renderAttendance(w io.Writer, s State) {
	fmt.Fprintf(w, "Employee:\t%s\n", employeeOption(s))
	fmt.Fprintf(w, "Date:\t%s\n", s.AttendanceForm.Date)
	fmt.Fprintf(w, "Status:\t%s\n", s.AttendanceForm.Status)

	filter := "all dates"
	if s.FilterDate != "" {
		filter = s.FilterDate
	}
	fmt.Fprintf(w, "Filter:\t%s\n\n", filter)

	if msg := s.AttendanceMessage(); msg != "" {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, "DATE\tEMPLOYEE ID\tFULL NAME\tSTATUS")
	for _, r := range s.Attendance {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Date, r.EmployeeID, r.FullName, r.Status)
	}
}

func employeeOption(s State) string {
	if len(s.Employees) == 0 {
		return "No employees available"
	}
	if e, ok := s.SelectedEmployee(); ok {
		return e.EmployeeID + " - " + e.FullName
	}
	return "(none selected)"
}
