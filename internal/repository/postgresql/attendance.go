package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_code, a.date, a.status, a.created_at, e.full_name
	FROM attendances a
	LEFT JOIN employees e ON e.employee_code = a.employee_code
`

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeCode, &a.Date, &a.Status, &a.CreatedAt, &a.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_code, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_code, date, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, a.ID, a.EmployeeCode, a.Date, a.Status).Scan(
		&created.ID, &created.EmployeeCode, &created.Date, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		if uniqueConstraint(err) == "attendances_employee_date_key" {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	created.EmployeeName = a.EmployeeName
	return created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect
	var args []interface{}
	if filter.Date != nil {
		query += ` WHERE a.date = $1`
		args = append(args, *filter.Date)
	}
	query += ` ORDER BY a.date DESC, a.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return scanAttendances(rows)
}

// ListByEmployeeCode implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeCode(ctx context.Context, employeeCode string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_code = $1 ORDER BY a.date DESC, a.created_at DESC`

	rows, err := q.Query(ctx, query, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", employeeCode, err)
	}
	return scanAttendances(rows)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, date, status, created_at
		FROM attendances
		WHERE employee_code = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeCode, date).Scan(&a.ID, &a.EmployeeCode, &a.Date, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &a, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// DeleteByEmployeeCode implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_code = $1`, employeeCode)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for %s: %w", employeeCode, err)
	}
	return tag.RowsAffected(), nil
}
