package employee

import "time"

type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time

	// Derived on read: number of attendance records marked Present
	PresentDays int64
}
