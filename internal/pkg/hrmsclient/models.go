package hrmsclient

import (
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

// Wire models are shared with the API so both sides agree on JSON field names.
type (
	Employee           = employee.EmployeeResponse
	NewEmployee        = employee.CreateEmployeeRequest
	AttendanceRecord   = attendance.AttendanceResponse
	MarkAttendance     = attendance.MarkAttendanceRequest
	EmployeeAttendance = attendance.EmployeeAttendanceResponse
	DashboardSummary   = dashboard.DashboardResponse
	EmployeeSummary    = dashboard.EmployeeSummary
)

type envelope[T any] struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e errorEnvelope) code() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Code
}

func (e errorEnvelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != nil {
		return e.Error.Message
	}
	return ""
}
