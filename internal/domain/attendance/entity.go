package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Statuses lists every accepted attendance status
var Statuses = []string{string(StatusPresent), string(StatusAbsent)}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO
	FullName string
}
