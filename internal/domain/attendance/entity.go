package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID           string
	EmployeeCode string
	Date         time.Time
	Status       Status
	CreatedAt    time.Time

	// DTO
	EmployeeName *string
}
