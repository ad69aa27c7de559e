package viewmodel

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
)

// memoryAPI is an in-memory backend. Hooks, when set, replace the default
// behaviour of a call.
type memoryAPI struct {
	mu        sync.Mutex
	employees []hrmsclient.Employee
	records   []hrmsclient.AttendanceRecord
	summary   hrmsclient.DashboardSummary
	nextID    int

	calls atomic.Int64

	listEmployeesHook  func(ctx context.Context) ([]hrmsclient.Employee, error)
	createEmployeeHook func(ctx context.Context, in hrmsclient.NewEmployee) (hrmsclient.Employee, error)
	deleteEmployeeHook func(ctx context.Context, code string) error
	listRecordsHook    func(ctx context.Context) ([]hrmsclient.AttendanceRecord, error)
	markHook           func(ctx context.Context, in hrmsclient.MarkAttendance) (hrmsclient.AttendanceRecord, error)
	deleteRecordHook   func(ctx context.Context, id string) error
	dashboardHook      func(ctx context.Context) (hrmsclient.DashboardSummary, error)
}

func (m *memoryAPI) ListEmployees(ctx context.Context) ([]hrmsclient.Employee, error) {
	m.calls.Add(1)
	if m.listEmployeesHook != nil {
		return m.listEmployeesHook(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]hrmsclient.Employee(nil), m.employees...), nil
}

func (m *memoryAPI) CreateEmployee(ctx context.Context, in hrmsclient.NewEmployee) (hrmsclient.Employee, error) {
	m.calls.Add(1)
	if m.createEmployeeHook != nil {
		return m.createEmployeeHook(ctx, in)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e := hrmsclient.Employee{
		ID:           fmt.Sprintf("emp-%d", m.nextID),
		EmployeeCode: in.EmployeeCode,
		FullName:     in.FullName,
		Email:        in.Email,
		Department:   in.Department,
	}
	m.employees = append(m.employees, e)
	return e, nil
}

func (m *memoryAPI) DeleteEmployee(ctx context.Context, code string) error {
	m.calls.Add(1)
	if m.deleteEmployeeHook != nil {
		return m.deleteEmployeeHook(ctx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.employees {
		if e.EmployeeCode == code {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return &hrmsclient.APIError{StatusCode: 404, Message: "Employee not found"}
}

func (m *memoryAPI) ListAttendance(ctx context.Context, filterDate string) ([]hrmsclient.AttendanceRecord, error) {
	m.calls.Add(1)
	if m.listRecordsHook != nil {
		return m.listRecordsHook(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []hrmsclient.AttendanceRecord
	for _, r := range m.records {
		if filterDate == "" || r.Date == filterDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryAPI) MarkAttendance(ctx context.Context, in hrmsclient.MarkAttendance) (hrmsclient.AttendanceRecord, error) {
	m.calls.Add(1)
	if m.markHook != nil {
		return m.markHook(ctx, in)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	name := "Unknown"
	for _, e := range m.employees {
		if e.EmployeeCode == in.EmployeeCode {
			name = e.FullName
		}
	}
	m.nextID++
	r := hrmsclient.AttendanceRecord{
		ID:           fmt.Sprintf("att-%d", m.nextID),
		EmployeeCode: in.EmployeeCode,
		EmployeeName: name,
		Date:         in.Date,
		Status:       in.Status,
	}
	m.records = append(m.records, r)
	return r, nil
}

func (m *memoryAPI) DeleteAttendance(ctx context.Context, id string) error {
	m.calls.Add(1)
	if m.deleteRecordHook != nil {
		return m.deleteRecordHook(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return &hrmsclient.APIError{StatusCode: 404, Message: "Attendance record not found"}
}

func (m *memoryAPI) Dashboard(ctx context.Context) (hrmsclient.DashboardSummary, error) {
	m.calls.Add(1)
	if m.dashboardHook != nil {
		return m.dashboardHook(ctx)
	}
	return m.summary, nil
}

func declineAll() Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
}
