// Package console is the terminal front-end: view state, refresh orchestration,
// the banner and a line-oriented shell over the API client.
package console

import (
	"errors"
	"strings"
)

type View string

const (
	ViewDashboard  View = "dashboard"
	ViewEmployees  View = "employees"
	ViewAttendance View = "attendance"
)

// Views lists the navigation targets in display order
var Views = []View{ViewDashboard, ViewEmployees, ViewAttendance}

var ErrUnknownView = errors.New("unknown view")

func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", ErrUnknownView
}

func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewEmployees:
		return "Employees"
	case ViewAttendance:
		return "Attendance"
	default:
		return string(v)
	}
}
