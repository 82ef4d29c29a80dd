package employee_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/testutil"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (employee.EmployeeService, *testutil.Store) {
	store := testutil.NewSQLiteStore(t)
	return employeeService.NewEmployeeService(store.Tx, store.Employees, store.Attendance), store
}

func avaRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "Ava Thompson",
		Email:      "ava@company.com",
		Department: "Engineering",
	}
}

func TestCreateEmployee_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, avaRequest())
	require.NoError(t, err)
	assert.Equal(t, employee.EmployeeResponse{
		EmployeeID: "EMP001", FullName: "Ava Thompson", Email: "ava@company.com", Department: "Engineering", PresentDays: 0,
	}, created)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, created, list.Employees[0])
}

func TestCreateEmployee_TrimsInput(t *testing.T) {
	svc, _ := newService(t)

	req := avaRequest()
	req.EmployeeID = "  EMP001 "
	req.FullName = " Ava Thompson "

	created, err := svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", created.EmployeeID)
	assert.Equal(t, "Ava Thompson", created.FullName)
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Email: "not-an-email"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "employeeId")
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "department")
	assert.Equal(t, "Email must be a valid email address", fields["email"])
}

func TestCreateEmployee_Duplicates(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.CreateEmployee(ctx, avaRequest())
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, avaRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	dupEmail := avaRequest()
	dupEmail.EmployeeID = "EMP002"
	dupEmail.Email = "AVA@company.com"
	_, err = svc.CreateEmployee(ctx, dupEmail)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestListEmployees_Empty(t *testing.T) {
	svc, _ := newService(t)

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Employees)
	assert.Empty(t, list.Employees)
}

func TestDeleteEmployee_RemovesAttendance(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	attSvc := attendanceService.NewAttendanceService(store.Attendance, store.Employees)

	_, err := svc.CreateEmployee(ctx, avaRequest())
	require.NoError(t, err)
	_, err = attSvc.MarkAttendance(ctx, attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Date: "2024-01-15", Status: "Present"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP001"))

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Employees)

	records, err := attSvc.ListAttendance(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, records.Attendance)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	svc, _ := newService(t)

	err := svc.DeleteEmployee(context.Background(), "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
