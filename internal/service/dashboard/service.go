package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now      func() time.Time
	location *time.Location
}

// NewDashboardService builds the service. now supplies the server clock and location
// decides which calendar day counts as "today".
func NewDashboardService(repo dashboard.DashboardRepository, now func() time.Time, location *time.Location) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 now,
		location:            location,
	}
}

// today returns the current calendar date in the configured location as UTC midnight
func (s *DashboardServiceImpl) today() time.Time {
	local := s.now().In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// GetDashboard returns the summary using parallel goroutines, one query each
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := s.today()

	var (
		employeeCount   int64
		attendanceToday dashboard.AttendanceTodayResponse
		totalRecords    int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee count
	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		employeeCount = count
		return nil
	})

	// 2. Today's present/absent split
	g.Go(func() error {
		stats, err := s.GetAttendanceStatsByDay(gCtx, today)
		if err != nil {
			return err
		}
		attendanceToday = dashboard.AttendanceTodayResponse{
			Present: stats.Present,
			Absent:  stats.Absent,
		}
		return nil
	})

	// 3. All attendance records
	g.Go(func() error {
		count, err := s.CountAttendance(gCtx)
		if err != nil {
			return err
		}
		totalRecords = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		EmployeeCount:          employeeCount,
		AttendanceToday:        attendanceToday,
		TotalAttendanceRecords: totalRecords,
		Today:                  today.Format(validator.DateLayout),
	}, nil
}
