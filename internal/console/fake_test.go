package console

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

// fakeAPI is an in-memory stand-in for the HTTP client
type fakeAPI struct {
	mu sync.Mutex

	employees  []employee.EmployeeResponse
	attendance []attendance.AttendanceResponse
	summary    dashboard.DashboardResponse

	// calls records every request in arrival order
	calls []string

	createErr    error
	deleteErr    error
	markErr      error
	dashboardErr error

	// attendanceGate, when set for a date, blocks ListAttendance until closed
	attendanceGate    map[string]chan struct{}
	attendanceStarted chan string
	attendanceErr     map[string]error

	// onRead, when set, runs at the start of every read call
	onRead func(call string)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		attendanceGate: map[string]chan struct{}{},
		attendanceErr:  map[string]error{},
	}
}

func (f *fakeAPI) read(call string) {
	f.record(call)
	f.mu.Lock()
	hook := f.onRead
	f.mu.Unlock()
	if hook != nil {
		hook(call)
	}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Dashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	f.read("GET /api/dashboard")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dashboardErr != nil {
		return dashboard.DashboardResponse{}, f.dashboardErr
	}
	return f.summary, nil
}

func (f *fakeAPI) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	f.read("GET /api/employees")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]employee.EmployeeResponse{}, f.employees...), nil
}

func (f *fakeAPI) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.record("POST /api/employees")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return employee.EmployeeResponse{}, f.createErr
	}
	created := employee.EmployeeResponse{EmployeeID: req.EmployeeID, FullName: req.FullName, Email: req.Email, Department: req.Department}
	f.employees = append(f.employees, created)
	f.summary.EmployeeCount++
	return created, nil
}

func (f *fakeAPI) DeleteEmployee(ctx context.Context, employeeID string) error {
	f.record("DELETE /api/employees/" + employeeID)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.employees {
		if e.EmployeeID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			f.summary.EmployeeCount--
			return nil
		}
	}
	return &client.RequestError{StatusCode: 404, Message: "Employee not found"}
}

func (f *fakeAPI) ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	f.read("GET /api/attendance?date=" + date)

	f.mu.Lock()
	gate := f.attendanceGate[date]
	started := f.attendanceStarted
	f.mu.Unlock()

	if started != nil {
		started <- date
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.attendanceErr[date]; err != nil {
		return nil, err
	}
	out := []attendance.AttendanceResponse{}
	for _, r := range f.attendance {
		if date == "" || r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAPI) MarkAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	f.record("POST /api/attendance")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return attendance.AttendanceResponse{}, f.markErr
	}
	created := attendance.AttendanceResponse{ID: req.EmployeeID + req.Date, EmployeeID: req.EmployeeID, Date: req.Date, Status: req.Status}
	f.attendance = append(f.attendance, created)
	f.summary.TotalAttendanceRecords++
	return created, nil
}

func (f *fakeAPI) ExportAttendance(ctx context.Context, date string) ([]byte, error) {
	f.record("GET /api/attendance/export?date=" + date)
	return []byte("xlsx:" + date), nil
}
