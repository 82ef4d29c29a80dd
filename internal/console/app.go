package console

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const (
	msgEmployeeCreated  = "Employee added successfully."
	msgEmployeeDeleted  = "Employee deleted successfully."
	msgAttendanceMarked = "Attendance marked successfully."
)

// API is the subset of the HTTP client the console drives
type API interface {
	Dashboard(ctx context.Context) (dashboard.DashboardResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceResponse, error)
	MarkAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	ExportAttendance(ctx context.Context, date string) ([]byte, error)
}

// generations tracks the latest request issued per read model. A response is
// applied only if no newer request for the same model was issued after it.
type generations struct {
	dashboard  uint64
	employees  uint64
	attendance uint64
}

// App owns the console state. Fetches run concurrently and apply their results
// under mu.
type App struct {
	api    API
	banner *Banner
	now    func() time.Time
	logger *slog.Logger

	mu    sync.Mutex
	state State
	gen   generations
}

type AppOption func(*App)

func WithClock(now func() time.Time) AppOption {
	return func(a *App) { a.now = now }
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

func NewApp(api API, banner *Banner, opts ...AppOption) *App {
	a := &App{
		api:    api,
		banner: banner,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.banner == nil {
		a.banner = NewBanner(DefaultBannerTTL)
	}

	a.state = State{
		View:           ViewDashboard,
		AttendanceForm: a.defaultAttendanceForm(""),
	}
	return a
}

func (a *App) defaultAttendanceForm(employeeID string) AttendanceForm {
	return AttendanceForm{
		EmployeeID: employeeID,
		Date:       a.now().Format(validator.DateLayout),
		Status:     string(attendance.StatusPresent),
	}
}

// Snapshot returns a copy of the current state including the banner
func (a *App) Snapshot() State {
	a.mu.Lock()
	s := a.state.clone()
	a.mu.Unlock()

	s.Banner = a.banner.Snapshot()
	return s
}

// Initialize loads all three read models concurrently. On failure the error
// banner is shown and whatever already arrived stays applied.
func (a *App) Initialize(ctx context.Context) error {
	return a.Refresh(ctx)
}

// Refresh re-fetches dashboard, employees and attendance in parallel
func (a *App) Refresh(ctx context.Context) error {
	if err := a.refreshAll(ctx); err != nil {
		a.banner.Error(err.Error())
		return err
	}
	return nil
}

func (a *App) refreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return a.refreshDashboard(ctx) })
	g.Go(func() error { return a.refreshEmployees(ctx) })
	g.Go(func() error { return a.refreshAttendance(ctx) })
	return g.Wait()
}

func (a *App) refreshDashboard(ctx context.Context) error {
	a.mu.Lock()
	a.gen.dashboard++
	gen := a.gen.dashboard
	a.mu.Unlock()

	summary, err := a.api.Dashboard(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen.dashboard {
		a.logger.Debug("Discarding stale dashboard response", "generation", gen, "latest", a.gen.dashboard, "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	a.state.Dashboard = &summary
	return nil
}

func (a *App) refreshEmployees(ctx context.Context) error {
	a.mu.Lock()
	a.gen.employees++
	gen := a.gen.employees
	a.mu.Unlock()

	employees, err := a.api.ListEmployees(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen.employees {
		a.logger.Debug("Discarding stale employees response", "generation", gen, "latest", a.gen.employees, "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	a.state.Employees = employees
	a.state.EmployeesLoaded = true
	a.state.AttendanceForm.EmployeeID = defaultEmployeeSelection(a.state.AttendanceForm.EmployeeID, employees)
	return nil
}

func (a *App) refreshAttendance(ctx context.Context) error {
	a.mu.Lock()
	a.gen.attendance++
	gen := a.gen.attendance
	date := a.state.FilterDate
	a.mu.Unlock()

	records, err := a.api.ListAttendance(ctx, date)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen.attendance {
		a.logger.Debug("Discarding stale attendance response", "generation", gen, "latest", a.gen.attendance, "date", date, "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	a.state.Attendance = records
	a.state.AttendanceLoaded = true
	return nil
}

// afterMutation shows the success banner and then refreshes every read model
func (a *App) afterMutation(ctx context.Context, message string) error {
	a.banner.Success(message)
	return a.Refresh(ctx)
}

// SetEmployeeForm replaces the new-employee form contents
func (a *App) SetEmployeeForm(form EmployeeForm) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.EmployeeForm = form
}

// SubmitEmployeeForm creates an employee from the form. The form is cleared only on success.
func (a *App) SubmitEmployeeForm(ctx context.Context) error {
	a.mu.Lock()
	req := a.state.EmployeeForm.request()
	a.mu.Unlock()

	if _, err := a.api.CreateEmployee(ctx, req); err != nil {
		a.banner.Error(err.Error())
		return err
	}

	a.mu.Lock()
	a.state.EmployeeForm = EmployeeForm{}
	a.mu.Unlock()

	return a.afterMutation(ctx, msgEmployeeCreated)
}

// DeleteEmployee removes an employee. Rows are not dropped locally; the refresh does that.
func (a *App) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := a.api.DeleteEmployee(ctx, employeeID); err != nil {
		a.banner.Error(err.Error())
		return err
	}
	return a.afterMutation(ctx, msgEmployeeDeleted)
}

// SetAttendanceForm replaces the attendance form contents
func (a *App) SetAttendanceForm(form AttendanceForm) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.AttendanceForm = form
}

// SelectEmployee points the attendance form at employeeID
func (a *App) SelectEmployee(employeeID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.AttendanceForm.EmployeeID = employeeID
}

// SubmitAttendanceForm marks attendance using the current form values
func (a *App) SubmitAttendanceForm(ctx context.Context) error {
	a.mu.Lock()
	req := a.state.AttendanceForm.request()
	a.mu.Unlock()

	if _, err := a.api.MarkAttendance(ctx, req); err != nil {
		a.banner.Error(err.Error())
		return err
	}
	return a.afterMutation(ctx, msgAttendanceMarked)
}

// ApplyFilter scopes the attendance list to date and re-fetches attendance only.
// The form date is not touched.
func (a *App) ApplyFilter(ctx context.Context, date string) error {
	a.mu.Lock()
	a.state.FilterDate = date
	a.mu.Unlock()

	if err := a.refreshAttendance(ctx); err != nil {
		a.banner.Error(err.Error())
		return err
	}
	return nil
}

func (a *App) ClearFilter(ctx context.Context) error {
	return a.ApplyFilter(ctx, "")
}

// Navigate switches the active view; unknown names leave the view unchanged
func (a *App) Navigate(name string) error {
	view, err := ParseView(name)
	if err != nil {
		a.banner.Error("Unknown view: " + name)
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.View = view
	return nil
}

// ExportAttendance downloads the workbook for date (all dates when empty)
func (a *App) ExportAttendance(ctx context.Context, date string) ([]byte, error) {
	content, err := a.api.ExportAttendance(ctx, date)
	if err != nil {
		a.banner.Error(err.Error())
		return nil, err
	}
	return content, nil
}

// Notify shows an arbitrary banner message
func (a *App) Notify(kind BannerKind, message string) {
	a.banner.Show(kind, message)
}
