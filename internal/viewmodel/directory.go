package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

const (
	msgLoadEmployeesFailed  = "Failed to load employees. Please try again."
	msgAllFieldsRequired    = "All fields are required."
	msgInvalidEmail         = "Invalid email format."
	msgEmployeeAdded        = "Employee added successfully!"
	msgAddEmployeeFailed    = "Failed to add employee."
	msgConfirmDeleteEmp     = "Are you sure you want to delete this employee?"
	msgDeleteEmployeeFailed = "Failed to delete employee."
)

// EmployeeAPI is the part of the HRMS client the directory uses.
type EmployeeAPI interface {
	ListEmployees(ctx context.Context) ([]hrmsclient.Employee, error)
	CreateEmployee(ctx context.Context, in hrmsclient.NewEmployee) (hrmsclient.Employee, error)
	DeleteEmployee(ctx context.Context, employeeCode string) error
}

// EmployeeInput is the add-employee form.
type EmployeeInput struct {
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
}

// EmployeeForm is the add-employee form state. Input survives a failed
// submit so the operator can fix and resubmit; it is reset on success.
type EmployeeForm struct {
	Input      EmployeeInput
	Submitting bool
	Error      string
	Notice     string
}

// Directory is the employee list view model.
type Directory struct {
	api     EmployeeAPI
	confirm Confirmer
	life    *lifetime

	employees store[[]hrmsclient.Employee]
	deleting  InFlight

	mu          sync.Mutex
	form        EmployeeForm
	actionError string
}

func NewDirectory(api EmployeeAPI, confirm Confirmer) *Directory {
	return &Directory{
		api:     api,
		confirm: confirm,
		life:    newLifetime(),
	}
}

func (d *Directory) State() State[[]hrmsclient.Employee] {
	return d.employees.snapshot()
}

// Empty reports a successful load that returned no employees.
func (d *Directory) Empty() bool {
	s := d.employees.snapshot()
	return s.Status() == StatusLoaded && len(s.Data) == 0
}

func (d *Directory) Form() EmployeeForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// ActionError is the banner left by the last failed delete.
func (d *Directory) ActionError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actionError
}

func (d *Directory) DismissMessages() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actionError = ""
	d.form.Error = ""
	d.form.Notice = ""
}

func (d *Directory) Deleting(employeeCode string) bool {
	return d.deleting.Has(employeeCode)
}

func (d *Directory) DeletingIDs() []string {
	return d.deleting.IDs()
}

// LoadAll fetches every employee. On failure the previous list is kept.
func (d *Directory) LoadAll(ctx context.Context) error {
	if d.life.closed() {
		return ErrClosed
	}
	ctx, cancel := d.life.bind(ctx)
	defer cancel()

	gen := d.employees.begin()
	list, err := d.api.ListEmployees(ctx)
	if err != nil {
		slog.Error("Failed to load employees", "error", err)
		d.employees.finish(gen, d.life, nil, msgLoadEmployeesFailed)
		return newRequestError(err, msgLoadEmployeesFailed)
	}
	if list == nil {
		list = []hrmsclient.Employee{}
	}
	d.employees.finish(gen, d.life, list, "")
	return nil
}

func (in EmployeeInput) validate() error {
	switch {
	case validator.IsEmpty(in.EmployeeCode):
		return validator.ValidationErrors{{Field: "employee_id", Message: msgAllFieldsRequired}}
	case validator.IsEmpty(in.FullName):
		return validator.ValidationErrors{{Field: "full_name", Message: msgAllFieldsRequired}}
	case validator.IsEmpty(in.Email):
		return validator.ValidationErrors{{Field: "email", Message: msgAllFieldsRequired}}
	case validator.IsEmpty(in.Department):
		return validator.ValidationErrors{{Field: "department", Message: msgAllFieldsRequired}}
	case !validator.IsLooseEmail(in.Email):
		return validator.ValidationErrors{{Field: "email", Message: msgInvalidEmail}}
	}
	return nil
}

// Create submits a new employee. Invalid input returns
// validator.ValidationErrors without calling the API. The list is not
// reloaded; call LoadAll afterwards.
func (d *Directory) Create(ctx context.Context, in EmployeeInput) (hrmsclient.Employee, error) {
	if d.life.closed() {
		return hrmsclient.Employee{}, ErrClosed
	}

	d.mu.Lock()
	d.form = EmployeeForm{Input: in}
	d.mu.Unlock()

	if err := in.validate(); err != nil {
		d.mu.Lock()
		d.form.Error = err.(validator.ValidationErrors).First()
		d.mu.Unlock()
		return hrmsclient.Employee{}, err
	}

	ctx, cancel := d.life.bind(ctx)
	defer cancel()

	d.mu.Lock()
	d.form.Submitting = true
	d.mu.Unlock()

	created, err := d.api.CreateEmployee(ctx, hrmsclient.NewEmployee{
		EmployeeCode: in.EmployeeCode,
		FullName:     in.FullName,
		Email:        in.Email,
		Department:   in.Department,
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.life.closed() {
		return hrmsclient.Employee{}, ErrClosed
	}
	d.form.Submitting = false
	if err != nil {
		reqErr := newRequestError(err, msgAddEmployeeFailed)
		d.form.Error = reqErr.Message
		return hrmsclient.Employee{}, reqErr
	}
	d.form = EmployeeForm{Notice: msgEmployeeAdded}
	return created, nil
}

// Remove deletes one employee after confirmation. Other rows stay usable
// while it runs. The list is not reloaded; call LoadAll afterwards.
func (d *Directory) Remove(ctx context.Context, employeeCode string) error {
	if d.life.closed() {
		return ErrClosed
	}
	if err := confirm(ctx, d.confirm, msgConfirmDeleteEmp); err != nil {
		return err
	}
	if !d.deleting.mark(employeeCode) {
		return ErrInFlight
	}
	defer d.deleting.clear(employeeCode)

	ctx, cancel := d.life.bind(ctx)
	defer cancel()

	err := d.api.DeleteEmployee(ctx, employeeCode)
	if d.life.closed() {
		return ErrClosed
	}
	if err != nil {
		reqErr := newRequestError(err, msgDeleteEmployeeFailed)
		d.mu.Lock()
		d.actionError = reqErr.Message
		d.mu.Unlock()
		return reqErr
	}
	return nil
}

// Filter applies FilterEmployees to the loaded list.
func (d *Directory) Filter(query string) []hrmsclient.Employee {
	return FilterEmployees(d.employees.snapshot().Data, query)
}

// Close discards late results and cancels in-flight requests.
func (d *Directory) Close() {
	d.life.close()
}
