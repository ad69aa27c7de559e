package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetTotals returns employee, record, present and absent counts in single query
func (r *dashboardRepositoryImpl) GetTotals(ctx context.Context) (*dashboard.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT 
			(SELECT COUNT(*) FROM employees) as total_employees,
			COUNT(a.id) as total_records,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_count
		FROM attendances a
	`

	var totals dashboard.Totals
	err := q.QueryRow(ctx, query).Scan(
		&totals.Employees, &totals.AttendanceRecords, &totals.Present, &totals.Absent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard totals: %w", err)
	}
	return &totals, nil
}

// GetEmployeeSummaries returns present/absent counts per employee in single query
func (r *dashboardRepositoryImpl) GetEmployeeSummaries(ctx context.Context) ([]dashboard.EmployeeSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT 
			e.employee_code, e.full_name, e.department,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_count
		FROM employees e
		LEFT JOIN attendances a ON a.employee_code = e.employee_code
		GROUP BY e.id, e.employee_code, e.full_name, e.department, e.created_at
		ORDER BY e.created_at, e.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]dashboard.EmployeeSummary, 0)
	for rows.Next() {
		var s dashboard.EmployeeSummary
		if err := rows.Scan(&s.EmployeeCode, &s.FullName, &s.Department, &s.TotalPresent, &s.TotalAbsent); err != nil {
			return nil, fmt.Errorf("failed to scan employee summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
