package attendance_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/testutil"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (attendance.AttendanceService, *testutil.Store) {
	store := testutil.NewSQLiteStore(t)
	ctx := context.Background()
	for _, e := range []employee.Employee{
		{EmployeeID: "EMP001", FullName: "Ava Thompson", Email: "ava@company.com", Department: "Engineering"},
		{EmployeeID: "EMP002", FullName: "Liam Chen", Email: "liam@company.com", Department: "Finance"},
	} {
		_, err := store.Employees.Create(ctx, e)
		require.NoError(t, err)
	}
	return attendanceService.NewAttendanceService(store.Attendance, store.Employees), store
}

func TestMarkAttendance_Success(t *testing.T) {
	svc, _ := setup(t)

	created, err := svc.MarkAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-01-15", Status: "Present",
	})

	require.NoError(t, err)
	parsed, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "EMP001", created.EmployeeID)
	assert.Equal(t, "Ava Thompson", created.FullName)
	assert.Equal(t, "2024-01-15", created.Date)
	assert.Equal(t, "Present", created.Status)
}

func TestMarkAttendance_Validation(t *testing.T) {
	svc, _ := setup(t)

	cases := map[string]struct {
		req   attendance.CreateAttendanceRequest
		field string
	}{
		"missing employee": {attendance.CreateAttendanceRequest{Date: "2024-01-15", Status: "Present"}, "employeeId"},
		"bad date":         {attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Date: "15/01/2024", Status: "Present"}, "date"},
		"missing date":     {attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Status: "Present"}, "date"},
		"bad status":       {attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Date: "2024-01-15", Status: "Late"}, "status"},
		"lowercase status": {attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Date: "2024-01-15", Status: "present"}, "status"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.MarkAttendance(context.Background(), tc.req)
			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tc.field)
		})
	}
}

func TestMarkAttendance_UnknownEmployee(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.MarkAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "EMP404", Date: "2024-01-15", Status: "Absent",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkAttendance_AlreadyMarked(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	req := attendance.CreateAttendanceRequest{EmployeeID: "EMP001", Date: "2024-01-15", Status: "Present"}

	_, err := svc.MarkAttendance(ctx, req)
	require.NoError(t, err)

	req.Status = "Absent"
	_, err = svc.MarkAttendance(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
}

func TestListAttendance_FilterIsExactSubset(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	marks := []attendance.CreateAttendanceRequest{
		{EmployeeID: "EMP001", Date: "2024-01-14", Status: "Present"},
		{EmployeeID: "EMP001", Date: "2024-01-15", Status: "Present"},
		{EmployeeID: "EMP002", Date: "2024-01-15", Status: "Absent"},
		{EmployeeID: "EMP002", Date: "2024-01-16", Status: "Present"},
	}
	for _, m := range marks {
		_, err := svc.MarkAttendance(ctx, m)
		require.NoError(t, err)
	}

	all, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all.Attendance, len(marks))

	for _, day := range []string{"2024-01-14", "2024-01-15", "2024-01-16", "2024-01-17"} {
		filter, err := attendance.ParseAttendanceFilter(day)
		require.NoError(t, err)

		filtered, err := svc.ListAttendance(ctx, filter)
		require.NoError(t, err)

		var want int
		for _, rec := range all.Attendance {
			if rec.Date == day {
				want++
			}
		}
		assert.Len(t, filtered.Attendance, want, "date %s", day)
		for _, rec := range filtered.Attendance {
			assert.Equal(t, day, rec.Date)
		}
	}
}

func TestParseAttendanceFilter(t *testing.T) {
	filter, err := attendance.ParseAttendanceFilter("")
	require.NoError(t, err)
	assert.Nil(t, filter.Date)

	_, err = attendance.ParseAttendanceFilter("2024-13-01")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateFilter)
}
