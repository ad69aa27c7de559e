package attendance

import "context"

type AttendanceService interface {
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetEmployeeAttendance(ctx context.Context, employeeCode string) (EmployeeAttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}
