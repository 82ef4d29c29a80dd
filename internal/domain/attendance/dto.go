package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request date; only meaningful after Validate succeeded
func (r *CreateAttendanceRequest) ParsedDate() time.Time {
	date, _ := validator.IsValidDate(r.Date)
	return date
}

// AttendanceFilter restricts a listing to one calendar date when Date is set
type AttendanceFilter struct {
	Date *time.Time
}

// ParseAttendanceFilter builds a filter from the ?date= query value; empty means unfiltered
func ParseAttendanceFilter(date string) (AttendanceFilter, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return AttendanceFilter{}, nil
	}
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return AttendanceFilter{}, ErrInvalidDateFilter
	}
	return AttendanceFilter{Date: &parsed}, nil
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		FullName:   a.FullName,
		Date:       a.Date.Format(validator.DateLayout),
		Status:     string(a.Status),
	}
}
