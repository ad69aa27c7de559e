package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines
// 2 goroutines, each with 1 DB query
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		totals    *dashboard.Totals
		summaries []dashboard.EmployeeSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Totals (employees, records, present, absent)
	g.Go(func() error {
		t, err := s.GetTotals(gCtx)
		if err != nil {
			return err
		}
		totals = t
		return nil
	})

	// 2. Per-employee present/absent counts
	g.Go(func() error {
		list, err := s.GetEmployeeSummaries(gCtx)
		if err != nil {
			return err
		}
		summaries = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if summaries == nil {
		summaries = []dashboard.EmployeeSummary{}
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:         totals.Employees,
		TotalAttendanceRecords: totals.AttendanceRecords,
		TotalPresent:           totals.Present,
		TotalAbsent:            totals.Absent,
		EmployeesSummary:       summaries,
	}, nil
}
