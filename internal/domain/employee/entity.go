package employee

import "time"

// Employee is a registered staff member. EmployeeCode is the human-assigned
// key used by attendance records and by delete operations; ID is opaque.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
}
