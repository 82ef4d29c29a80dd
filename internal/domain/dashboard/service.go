package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the summary counts, fetched concurrently
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
