package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// List returns records newest first, joined with the employee name
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListByEmployeeCode returns one employee's records newest first
	ListByEmployeeCode(ctx context.Context, employeeCode string) ([]Attendance, error)

	// GetByEmployeeAndDate returns nil when the employee has no record that day
	GetByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error)

	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeCode removes every record of an employee
	DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int64, error)
}
