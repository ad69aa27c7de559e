package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

const DateLayout = "2006-01-02"

// UnknownEmployeeName is shown for records whose employee no longer resolves.
const UnknownEmployeeName = "Unknown"

type MarkAttendanceRequest struct {
	EmployeeCode string `json:"employee_id"`
	Date         string `json:"date"`
	Status       Status `json:"status"`

	date time.Time
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.date = d
	}

	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate is the calendar date accepted by Validate.
func (r *MarkAttendanceRequest) ParsedDate() time.Time {
	return r.date
}

// AttendanceFilter narrows a listing to a single calendar day when Date is set.
type AttendanceFilter struct {
	Date *time.Time
}

// ParseFilterDate builds a filter from the filter_date query parameter.
func ParseFilterDate(filterDate string) (AttendanceFilter, error) {
	if filterDate == "" {
		return AttendanceFilter{}, nil
	}
	d, ok := validator.IsValidDate(filterDate)
	if !ok {
		return AttendanceFilter{}, ErrInvalidDateFormat
	}
	return AttendanceFilter{Date: &d}, nil
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	name := UnknownEmployeeName
	if a.EmployeeName != nil {
		name = *a.EmployeeName
	}
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeCode: a.EmployeeCode,
		EmployeeName: name,
		Date:         a.Date.Format(DateLayout),
		Status:       a.Status,
	}
}

type EmployeeInfo struct {
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}

// EmployeeAttendanceResponse is one employee's history with present/absent totals.
type EmployeeAttendanceResponse struct {
	Employee     EmployeeInfo         `json:"employee"`
	TotalPresent int                  `json:"total_present"`
	TotalAbsent  int                  `json:"total_absent"`
	TotalRecords int                  `json:"total_records"`
	Records      []AttendanceResponse `json:"records"`
}
