package viewmodel

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
)

const msgLoadDashboardFailed = "Failed to load dashboard data. Please try again."

type DashboardAPI interface {
	Dashboard(ctx context.Context) (hrmsclient.DashboardSummary, error)
}

// Dashboard is the summary view model.
type Dashboard struct {
	api     DashboardAPI
	life    *lifetime
	summary store[hrmsclient.DashboardSummary]
}

func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api, life: newLifetime()}
}

func (d *Dashboard) State() State[hrmsclient.DashboardSummary] {
	return d.summary.snapshot()
}

// Empty reports a loaded summary with no employees.
func (d *Dashboard) Empty() bool {
	s := d.summary.snapshot()
	return s.Status() == StatusLoaded && len(s.Data.EmployeesSummary) == 0
}

// Load fetches the summary. On failure the previous summary is kept.
func (d *Dashboard) Load(ctx context.Context) error {
	if d.life.closed() {
		return ErrClosed
	}
	ctx, cancel := d.life.bind(ctx)
	defer cancel()

	gen := d.summary.begin()
	summary, err := d.api.Dashboard(ctx)
	if err != nil {
		slog.Error("Failed to load dashboard", "error", err)
		d.summary.finish(gen, d.life, hrmsclient.DashboardSummary{}, msgLoadDashboardFailed)
		return newRequestError(err, msgLoadDashboardFailed)
	}
	d.summary.finish(gen, d.life, summary, "")
	return nil
}

func (d *Dashboard) Retry(ctx context.Context) error {
	return d.Load(ctx)
}

// Filter applies FilterSummaries to the loaded per-employee summaries.
func (d *Dashboard) Filter(query string) []hrmsclient.EmployeeSummary {
	return FilterSummaries(query, d.summary.snapshot().Data.EmployeesSummary)
}

func (d *Dashboard) Close() {
	d.life.close()
}

// AttendanceRate is the share of records marked Present, 0-100, rounded
// half up. It is 0 when there are no records.
func AttendanceRate(s hrmsclient.DashboardSummary) int {
	return percent(s.TotalPresent, s.TotalAttendanceRecords)
}

// AbsenceRate is 100 minus AttendanceRate. It is not derived from
// TotalAbsent, so it reads 100 when there are no records.
func AbsenceRate(s hrmsclient.DashboardSummary) int {
	return 100 - AttendanceRate(s)
}

// PerEmployeeRate is present/(present+absent) as a rounded percentage.
func PerEmployeeRate(present, absent int64) int {
	return percent(present, present+absent)
}

func percent(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int((part*200 + total) / (2 * total))
}
