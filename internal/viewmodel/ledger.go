package viewmodel

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const (
	msgLoadRecordsFailed  = "Failed to load attendance records. Please try again."
	msgSelectEmployee     = "Please select an employee."
	msgAttendanceMarked   = "Attendance marked successfully!"
	msgMarkFailed         = "Failed to mark attendance."
	msgConfirmDeleteRec   = "Delete this attendance record?"
	msgDeleteRecordFailed = "Failed to delete record."
)

// AttendanceAPI is the part of the HRMS client the ledger uses.
type AttendanceAPI interface {
	ListEmployees(ctx context.Context) ([]hrmsclient.Employee, error)
	ListAttendance(ctx context.Context, filterDate string) ([]hrmsclient.AttendanceRecord, error)
	MarkAttendance(ctx context.Context, in hrmsclient.MarkAttendance) (hrmsclient.AttendanceRecord, error)
	DeleteAttendance(ctx context.Context, recordID string) error
}

// MarkInput is the mark-attendance form. Empty Date means the mount date,
// empty Status means Present.
type MarkInput struct {
	EmployeeCode string
	Date         string
	Status       attendance.Status
}

type MarkForm struct {
	Input      MarkInput
	Submitting bool
	Error      string
	Notice     string
}

type LedgerOption func(*Ledger)

// WithClock replaces time.Now for the default date.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// Ledger is the attendance view model.
type Ledger struct {
	api     AttendanceAPI
	confirm Confirmer
	life    *lifetime
	now     func() time.Time

	employees store[[]hrmsclient.Employee]
	records   store[[]hrmsclient.AttendanceRecord]
	deleting  InFlight

	mu          sync.Mutex
	defaultDate string
	form        MarkForm
	actionError string
}

func NewLedger(api AttendanceAPI, confirm Confirmer, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		api:     api,
		confirm: confirm,
		life:    newLifetime(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.form.Input.Status = attendance.StatusPresent
	return l
}

// Mount sets the default date to today (local time) and loads employees and
// records concurrently. Neither load waits for the other, and a failure of
// one does not undo the other. The returned error joins both failures,
// records first.
func (l *Ledger) Mount(ctx context.Context) error {
	l.mu.Lock()
	l.defaultDate = l.now().Format(attendance.DateLayout)
	l.form.Input.Date = l.defaultDate
	l.mu.Unlock()

	var (
		g            errgroup.Group
		employeesErr error
		recordsErr   error
	)
	g.Go(func() error {
		employeesErr = l.LoadEmployees(ctx)
		return employeesErr
	})
	g.Go(func() error {
		recordsErr = l.LoadAll(ctx)
		return recordsErr
	})
	_ = g.Wait()
	return errors.Join(recordsErr, employeesErr)
}

func (l *Ledger) DefaultDate() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.defaultDate == "" {
		return l.now().Format(attendance.DateLayout)
	}
	return l.defaultDate
}

func (l *Ledger) Employees() State[[]hrmsclient.Employee] {
	return l.employees.snapshot()
}

func (l *Ledger) State() State[[]hrmsclient.AttendanceRecord] {
	return l.records.snapshot()
}

func (l *Ledger) Empty() bool {
	s := l.records.snapshot()
	return s.Status() == StatusLoaded && len(s.Data) == 0
}

func (l *Ledger) Form() MarkForm {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.form
}

func (l *Ledger) ActionError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.actionError
}

func (l *Ledger) DismissMessages() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actionError = ""
	l.form.Error = ""
	l.form.Notice = ""
}

func (l *Ledger) Deleting(recordID string) bool {
	return l.deleting.Has(recordID)
}

func (l *Ledger) DeletingIDs() []string {
	return l.deleting.IDs()
}

// LoadEmployees fetches the employee selector options. A failure is logged
// and leaves the previous options in place.
func (l *Ledger) LoadEmployees(ctx context.Context) error {
	if l.life.closed() {
		return ErrClosed
	}
	ctx, cancel := l.life.bind(ctx)
	defer cancel()

	gen := l.employees.begin()
	list, err := l.api.ListEmployees(ctx)
	if err != nil {
		slog.Error("Failed to fetch employees", "error", err)
		l.employees.finish(gen, l.life, nil, msgLoadEmployeesFailed)
		return newRequestError(err, msgLoadEmployeesFailed)
	}
	if list == nil {
		list = []hrmsclient.Employee{}
	}
	l.employees.finish(gen, l.life, list, "")
	return nil
}

// LoadAll fetches every attendance record. On failure the previous records are kept.
func (l *Ledger) LoadAll(ctx context.Context) error {
	if l.life.closed() {
		return ErrClosed
	}
	ctx, cancel := l.life.bind(ctx)
	defer cancel()

	gen := l.records.begin()
	records, err := l.api.ListAttendance(ctx, "")
	if err != nil {
		slog.Error("Failed to load attendance records", "error", err)
		l.records.finish(gen, l.life, nil, msgLoadRecordsFailed)
		return newRequestError(err, msgLoadRecordsFailed)
	}
	if records == nil {
		records = []hrmsclient.AttendanceRecord{}
	}
	l.records.finish(gen, l.life, records, "")
	return nil
}

// Mark submits one attendance mark. The records are not reloaded; call
// LoadAll afterwards.
func (l *Ledger) Mark(ctx context.Context, in MarkInput) (hrmsclient.AttendanceRecord, error) {
	if l.life.closed() {
		return hrmsclient.AttendanceRecord{}, ErrClosed
	}
	if in.Date == "" {
		in.Date = l.DefaultDate()
	}
	if in.Status == "" {
		in.Status = attendance.StatusPresent
	}

	l.mu.Lock()
	l.form = MarkForm{Input: in}
	if validator.IsEmpty(in.EmployeeCode) {
		l.form.Error = msgSelectEmployee
		l.mu.Unlock()
		return hrmsclient.AttendanceRecord{}, validator.ValidationErrors{{Field: "employee_id", Message: msgSelectEmployee}}
	}
	l.form.Submitting = true
	l.mu.Unlock()

	ctx, cancel := l.life.bind(ctx)
	defer cancel()

	marked, err := l.api.MarkAttendance(ctx, hrmsclient.MarkAttendance{
		EmployeeCode: in.EmployeeCode,
		Date:         in.Date,
		Status:       in.Status,
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.life.closed() {
		return hrmsclient.AttendanceRecord{}, ErrClosed
	}
	l.form.Submitting = false
	if err != nil {
		reqErr := newRequestError(err, msgMarkFailed)
		l.form.Error = reqErr.Message
		return hrmsclient.AttendanceRecord{}, reqErr
	}
	l.form = MarkForm{
		Input:  MarkInput{Date: in.Date, Status: attendance.StatusPresent},
		Notice: msgAttendanceMarked,
	}
	return marked, nil
}

// Remove deletes one record after confirmation. The records are not
// reloaded; call LoadAll afterwards.
func (l *Ledger) Remove(ctx context.Context, recordID string) error {
	if l.life.closed() {
		return ErrClosed
	}
	if err := confirm(ctx, l.confirm, msgConfirmDeleteRec); err != nil {
		return err
	}
	if !l.deleting.mark(recordID) {
		return ErrInFlight
	}
	defer l.deleting.clear(recordID)

	ctx, cancel := l.life.bind(ctx)
	defer cancel()

	err := l.api.DeleteAttendance(ctx, recordID)
	if l.life.closed() {
		return ErrClosed
	}
	if err != nil {
		reqErr := newRequestError(err, msgDeleteRecordFailed)
		l.mu.Lock()
		l.actionError = reqErr.Message
		l.mu.Unlock()
		return reqErr
	}
	return nil
}

// FilterByEmployee applies FilterRecordsByEmployee to the loaded records.
func (l *Ledger) FilterByEmployee(employeeCode string) []hrmsclient.AttendanceRecord {
	return FilterRecordsByEmployee(l.records.snapshot().Data, employeeCode)
}

func (l *Ledger) Close() {
	l.life.close()
}
