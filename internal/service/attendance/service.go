package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		employeeRepo:         employeeRepo,
	}
}

func mapAttendancesToResponse(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return mapAttendancesToResponse(records), nil
}

// MarkAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.ParsedDate()
	existing, err := a.GetByEmployeeAndDate(ctx, req.EmployeeCode, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, &attendance.AlreadyMarkedError{
			EmployeeName: emp.FullName,
			Date:         date.Format(attendance.DateLayout),
			Status:       existing.Status,
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		ID:           id.String(),
		EmployeeCode: req.EmployeeCode,
		Date:         date,
		Status:       req.Status,
		EmployeeName: &emp.FullName,
	})
	if err != nil {
		// Lost a race with a concurrent mark for the same day.
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			return attendance.AttendanceResponse{}, &attendance.AlreadyMarkedError{
				EmployeeName: emp.FullName,
				Date:         date.Format(attendance.DateLayout),
				Status:       req.Status,
			}
		}
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeCode string) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := a.employeeRepo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	records, err := a.ListByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list employee attendance: %w", err)
	}

	var present, absent int
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		}
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: attendance.EmployeeInfo{
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
			Department:   emp.Department,
		},
		TotalPresent: present,
		TotalAbsent:  absent,
		TotalRecords: len(records),
		Records:      mapAttendancesToResponse(records),
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrInvalidAttendanceID
	}
	return a.Delete(ctx, id)
}
