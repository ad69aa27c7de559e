package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	// ExistsByCodeOrEmail reports independently whether the code and the email are taken.
	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (codeExists bool, emailExists bool, err error)
	DeleteByEmployeeCode(ctx context.Context, employeeCode string) error
}
