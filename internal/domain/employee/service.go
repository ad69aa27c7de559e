package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every registered employee
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee registers a new employee with a unique code and email
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of their attendance records
	DeleteEmployee(ctx context.Context, employeeCode string) error
}
