package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/report"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *httptest.Server {
	server, _ := testutil.NewAPIServer(t, func() time.Time { return testNow })
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

var ava = map[string]string{
	"employeeId": "EMP001",
	"fullName":   "Ava Thompson",
	"email":      "ava@company.com",
	"department": "Engineering",
}

func TestEmployeeLifecycle(t *testing.T) {
	server := newServer(t)

	status, body := doJSON(t, server, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["employees"])

	status, body = doJSON(t, server, http.MethodPost, "/api/employees", ava)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "EMP001", body["employeeId"])
	assert.Equal(t, float64(0), body["presentDays"])

	status, body = doJSON(t, server, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusOK, status)
	employees := body["employees"].([]interface{})
	require.Len(t, employees, 1)
	assert.Equal(t, map[string]interface{}{
		"employeeId":  "EMP001",
		"fullName":    "Ava Thompson",
		"email":       "ava@company.com",
		"department":  "Engineering",
		"presentDays": float64(0),
	}, employees[0])

	status, body = doJSON(t, server, http.MethodDelete, "/api/employees/EMP001", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Employee deleted successfully", body["message"])

	status, body = doJSON(t, server, http.MethodDelete, "/api/employees/EMP001", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Employee not found", body["error"])
}

func TestCreateEmployee_Errors(t *testing.T) {
	server := newServer(t)

	status, _ := doJSON(t, server, http.MethodPost, "/api/employees", ava)
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, server, http.MethodPost, "/api/employees", ava)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Employee ID already exists", body["error"])

	status, body = doJSON(t, server, http.MethodPost, "/api/employees", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request format", body["error"])

	status, body = doJSON(t, server, http.MethodPost, "/api/employees", map[string]string{"employeeId": "EMP002"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["error"], "Full name is required")
	assert.Contains(t, body["details"], "email")
}

func TestAttendanceFlow(t *testing.T) {
	server := newServer(t)

	status, _ := doJSON(t, server, http.MethodPost, "/api/employees", ava)
	require.Equal(t, http.StatusCreated, status)

	mark := map[string]string{"employeeId": "EMP001", "date": "2024-01-15", "status": "Present"}
	status, body := doJSON(t, server, http.MethodPost, "/api/attendance", mark)
	assert.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Ava Thompson", body["fullName"])

	status, body = doJSON(t, server, http.MethodPost, "/api/attendance", mark)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Attendance already marked for this date", body["error"])

	status, body = doJSON(t, server, http.MethodPost, "/api/attendance",
		map[string]string{"employeeId": "EMP404", "date": "2024-01-15", "status": "Present"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Employee not found", body["error"])

	status, body = doJSON(t, server, http.MethodGet, "/api/attendance?date=2024-01-15", nil)
	assert.Equal(t, http.StatusOK, status)
	records := body["attendance"].([]interface{})
	require.Len(t, records, 1)
	record := records[0].(map[string]interface{})
	assert.Equal(t, "EMP001", record["employeeId"])
	assert.Equal(t, "2024-01-15", record["date"])
	assert.Equal(t, "Present", record["status"])

	status, body = doJSON(t, server, http.MethodGet, "/api/attendance?date=2024-01-16", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["attendance"])

	status, body = doJSON(t, server, http.MethodGet, "/api/attendance?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", body["code"])

	status, body = doJSON(t, server, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, status)
	employees := body["employees"].([]interface{})
	assert.Equal(t, float64(1), employees[0].(map[string]interface{})["presentDays"])
}

func TestDashboard(t *testing.T) {
	server := newServer(t)

	status, body := doJSON(t, server, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]interface{}{
		"employeeCount":          float64(0),
		"attendanceToday":        map[string]interface{}{"present": float64(0), "absent": float64(0)},
		"totalAttendanceRecords": float64(0),
		"today":                  "2024-01-15",
	}, body)

	doJSON(t, server, http.MethodPost, "/api/employees", ava)
	doJSON(t, server, http.MethodPost, "/api/attendance", map[string]string{"employeeId": "EMP001", "date": "2024-01-15", "status": "Absent"})
	doJSON(t, server, http.MethodPost, "/api/attendance", map[string]string{"employeeId": "EMP001", "date": "2024-01-14", "status": "Present"})

	_, body = doJSON(t, server, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, float64(1), body["employeeCount"])
	assert.Equal(t, map[string]interface{}{"present": float64(0), "absent": float64(1)}, body["attendanceToday"])
	assert.Equal(t, float64(2), body["totalAttendanceRecords"])
}

func TestExportAttendance(t *testing.T) {
	server := newServer(t)
	doJSON(t, server, http.MethodPost, "/api/employees", ava)
	doJSON(t, server, http.MethodPost, "/api/attendance", map[string]string{"employeeId": "EMP001", "date": "2024-01-15", "status": "Present"})

	resp, err := server.Client().Get(server.URL + "/api/attendance/export?date=2024-01-15")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.ContentTypeXLSX, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attendance_20240115_")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRouterAmbient(t *testing.T) {
	server := newServer(t)

	resp, err := server.Client().Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := doJSON(t, server, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["error"])

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/employees", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	server := newServer(t)

	status, body := doJSON(t, server, http.MethodPut, "/api/employees", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}

func TestCreateEmployee_RejectsDotOnlyIDs(t *testing.T) {
	server := newServer(t)

	for _, id := range []string{".", ".."} {
		status, body := doJSON(t, server, http.MethodPost, "/api/employees", map[string]string{
			"employeeId": id,
			"fullName":   "Dot Person",
			"email":      "dot" + strings.Repeat("x", len(id)) + "@company.com",
			"department": "Engineering",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status, id)
		assert.Contains(t, body["details"], "employeeId", id)
	}

	status, body := doJSON(t, server, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["employees"])
}
