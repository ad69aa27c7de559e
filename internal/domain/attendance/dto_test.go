package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	req := MarkAttendanceRequest{EmployeeCode: " E1 ", Date: "2024-01-10", Status: StatusPresent}

	require.NoError(t, req.Validate())
	assert.Equal(t, "E1", req.EmployeeCode)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), req.ParsedDate())
}

func TestMarkAttendanceRequest_Validate_Errors(t *testing.T) {
	req := MarkAttendanceRequest{Date: "10/01/2024", Status: "Late"}

	var errs validator.ValidationErrors
	require.True(t, errors.As(req.Validate(), &errs))
	fields := errs.ToMap()
	assert.Equal(t, "employee_id is required", fields["employee_id"])
	assert.Equal(t, "date must be in YYYY-MM-DD format", fields["date"])
	assert.Equal(t, "status must be Present or Absent", fields["status"])
}

func TestParseFilterDate(t *testing.T) {
	f, err := ParseFilterDate("")
	require.NoError(t, err)
	assert.Nil(t, f.Date)

	f, err = ParseFilterDate("2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, f.Date)
	assert.Equal(t, 1, f.Date.Day())

	_, err = ParseFilterDate("March 1")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestNewAttendanceResponse_UnknownEmployee(t *testing.T) {
	resp := NewAttendanceResponse(Attendance{
		ID:           "r1",
		EmployeeCode: "E9",
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:       StatusAbsent,
	})
	assert.Equal(t, UnknownEmployeeName, resp.EmployeeName)
	assert.Equal(t, "2024-01-10", resp.Date)
}

func TestAlreadyMarkedError(t *testing.T) {
	var err error = &AlreadyMarkedError{EmployeeName: "Ann", Date: "2024-01-10", Status: StatusPresent}

	assert.ErrorIs(t, err, ErrAlreadyMarked)
	assert.Equal(t, "Attendance for Ann on 2024-01-10 is already marked as 'Present'", err.Error())
}
