// Package client talks to the HRMS Lite JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

const defaultErrorMessage = "Request failed"

// RequestError is the single failure type returned by Client
type RequestError struct {
	// StatusCode is zero when the request never got a response
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the transport, mostly for tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call sends one JSON request and decodes the reply into out when out is non-nil.
// A missing or malformed body decodes as {}.
func (c *Client) Call(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out != nil && len(raw) > 0 {
		// a malformed body leaves out at its zero value, same as decoding {}
		_ = json.Unmarshal(raw, out)
	}
	return nil
}

// do performs the request and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		raw = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}
	return raw, nil
}

func errorMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Error == "" {
		return defaultErrorMessage
	}
	return payload.Error
}

func (c *Client) Dashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	var out dashboard.DashboardResponse
	err := c.Call(ctx, http.MethodGet, "/api/dashboard", nil, &out)
	return out, err
}

func (c *Client) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var out employee.ListEmployeeResponse
	if err := c.Call(ctx, http.MethodGet, "/api/employees", nil, &out); err != nil {
		return nil, err
	}
	if out.Employees == nil {
		out.Employees = []employee.EmployeeResponse{}
	}
	return out.Employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	var out employee.EmployeeResponse
	err := c.Call(ctx, http.MethodPost, "/api/employees", req, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.Call(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(employeeID), nil, nil)
}

// ListAttendance lists records for one date, or all records when date is empty
func (c *Client) ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	var out attendance.ListAttendanceResponse
	if err := c.Call(ctx, http.MethodGet, withDate("/api/attendance", date), nil, &out); err != nil {
		return nil, err
	}
	if out.Attendance == nil {
		out.Attendance = []attendance.AttendanceResponse{}
	}
	return out.Attendance, nil
}

func (c *Client) MarkAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	var out attendance.AttendanceResponse
	err := c.Call(ctx, http.MethodPost, "/api/attendance", req, &out)
	return out, err
}

// ExportAttendance downloads the xlsx workbook for date (all dates when empty)
func (c *Client) ExportAttendance(ctx context.Context, date string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, withDate("/api/attendance/export", date), nil)
}

func withDate(path, date string) string {
	if date == "" {
		return path
	}
	return path + "?" + url.Values{"date": {date}}.Encode()
}
