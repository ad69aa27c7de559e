package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			parts = append(parts, e.Field+": "+e.Message)
		}
		ValidationError(w, "Validation failed: "+strings.Join(parts, ", "), validationErrs.ToMap())
		return
	}

	// The duplicate-mark message names the employee, date and existing status.
	var alreadyMarked *attendance.AlreadyMarkedError
	if errors.As(err, &alreadyMarked) {
		Conflict(w, alreadyMarked.Error())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidAttendanceID):
		BadRequest(w, "Invalid attendance ID format", nil)
	case errors.Is(err, attendance.ErrInvalidDateFormat):
		BadRequest(w, "Invalid date format. Use YYYY-MM-DD", nil)
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this date")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
