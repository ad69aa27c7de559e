package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	GetTotalsFn            func(ctx context.Context) (*dashboard.Totals, error)
	GetEmployeeSummariesFn func(ctx context.Context) ([]dashboard.EmployeeSummary, error)
}

func (f *fakeRepo) GetTotals(ctx context.Context) (*dashboard.Totals, error) {
	return f.GetTotalsFn(ctx)
}

func (f *fakeRepo) GetEmployeeSummaries(ctx context.Context) ([]dashboard.EmployeeSummary, error) {
	return f.GetEmployeeSummariesFn(ctx)
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeRepo{
		GetTotalsFn: func(ctx context.Context) (*dashboard.Totals, error) {
			return &dashboard.Totals{Employees: 2, AttendanceRecords: 4, Present: 3, Absent: 1}, nil
		},
		GetEmployeeSummariesFn: func(ctx context.Context) ([]dashboard.EmployeeSummary, error) {
			return []dashboard.EmployeeSummary{
				{EmployeeCode: "E1", FullName: "Ann Lee", TotalPresent: 2, TotalAbsent: 1},
				{EmployeeCode: "E2", FullName: "Bob Ray", TotalPresent: 1},
			}, nil
		},
	}

	resp, err := NewDashboardService(repo).GetDashboard(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.TotalEmployees)
	assert.EqualValues(t, 4, resp.TotalAttendanceRecords)
	assert.EqualValues(t, 3, resp.TotalPresent)
	assert.EqualValues(t, 1, resp.TotalAbsent)
	assert.Len(t, resp.EmployeesSummary, 2)
}

func TestGetDashboard_EmptySummariesNotNil(t *testing.T) {
	repo := &fakeRepo{
		GetTotalsFn: func(ctx context.Context) (*dashboard.Totals, error) {
			return &dashboard.Totals{}, nil
		},
		GetEmployeeSummariesFn: func(ctx context.Context) ([]dashboard.EmployeeSummary, error) {
			return nil, nil
		},
	}

	resp, err := NewDashboardService(repo).GetDashboard(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, resp.EmployeesSummary)
}

func TestGetDashboard_Error(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeRepo{
		GetTotalsFn: func(ctx context.Context) (*dashboard.Totals, error) {
			return &dashboard.Totals{}, nil
		},
		GetEmployeeSummariesFn: func(ctx context.Context) ([]dashboard.EmployeeSummary, error) {
			return nil, boom
		},
	}

	resp, err := NewDashboardService(repo).GetDashboard(context.Background())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
}
