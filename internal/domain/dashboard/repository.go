package dashboard

import "context"

// Totals combines all scalar counts in a single query
type Totals struct {
	Employees         int64
	AttendanceRecords int64
	Present           int64
	Absent            int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetTotals returns employee and attendance counts in single query
	GetTotals(ctx context.Context) (*Totals, error)

	// GetEmployeeSummaries returns per-employee present/absent counts in registration order
	GetEmployeeSummaries(ctx context.Context) ([]EmployeeSummary, error)
}
