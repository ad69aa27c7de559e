package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrInvalidAttendanceID = errors.New("invalid attendance ID format")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrAlreadyMarked       = errors.New("attendance already marked")
)

// AlreadyMarkedError carries the existing record for a duplicate mark.
type AlreadyMarkedError struct {
	EmployeeName string
	Date         string
	Status       Status
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("Attendance for %s on %s is already marked as '%s'", e.EmployeeName, e.Date, e.Status)
}

func (e *AlreadyMarkedError) Is(target error) bool {
	return target == ErrAlreadyMarked
}
