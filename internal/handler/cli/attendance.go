package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/cmlabs-hris/hrms-lite/internal/viewmodel"
	"github.com/spf13/cobra"
)

const msgNoRecords = "No attendance records found"

func newAttendanceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "List, mark and delete attendance records",
	}
	cmd.AddCommand(
		newAttendanceListCommand(a),
		newAttendanceMarkCommand(a),
		newAttendanceDeleteCommand(a),
		newAttendanceShowCommand(a),
	)
	return cmd
}

func (a *app) newLedger(confirm viewmodel.Confirmer) *viewmodel.Ledger {
	return viewmodel.NewLedger(a.api, confirm, viewmodel.WithClock(a.opts.Now))
}

func newAttendanceListCommand(a *app) *cobra.Command {
	var employeeCode string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.newLedger(nil)
			defer l.Close()

			if err := l.Mount(cmd.Context()); err != nil {
				if errors.Is(err, viewmodel.ErrClosed) {
					return err
				}
				// Only the records are needed to render the list.
				var reqErr *viewmodel.RequestError
				if l.State().Status() == viewmodel.StatusError && errors.As(err, &reqErr) {
					return reqErr
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", l.Employees().ErrorMessage)
			}
			return printLedger(cmd.OutOrStdout(), l, employeeCode)
		},
	}
	cmd.Flags().StringVarP(&employeeCode, "employee", "e", "", "only show records for this employee ID")
	return cmd
}

func newAttendanceMarkCommand(a *app) *cobra.Command {
	var (
		in     viewmodel.MarkInput
		status string
	)

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark attendance for one employee",
		Long:  "Mark attendance for one employee. The date defaults to today and the status to Present.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = attendance.Status(status)
			if in.Status != "" && !in.Status.IsValid() {
				return fmt.Errorf("status must be %s or %s", attendance.StatusPresent, attendance.StatusAbsent)
			}

			l := a.newLedger(nil)
			defer l.Close()

			if _, err := l.Mark(cmd.Context(), in); err != nil {
				return displayError(l.Form().Error, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l.Form().Notice)

			if err := l.LoadAll(cmd.Context()); err != nil {
				return err
			}
			return printLedger(out, l, "")
		},
	}
	cmd.Flags().StringVarP(&in.EmployeeCode, "employee", "e", "", "employee ID")
	cmd.Flags().StringVarP(&in.Date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&status, "status", "", "Present or Absent (default Present)")
	return cmd
}

func newAttendanceDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete RECORD_ID",
		Short: "Delete one attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.newLedger(confirmerFor(cmd, yes))
			defer l.Close()

			out := cmd.OutOrStdout()
			err := l.Remove(cmd.Context(), args[0])
			if errors.Is(err, viewmodel.ErrCancelled) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Attendance record deleted.")

			if err := l.LoadAll(cmd.Context()); err != nil {
				return err
			}
			return printLedger(out, l, "")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newAttendanceShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show EMPLOYEE_ID",
		Short: "Show one employee's attendance history and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := a.api.EmployeeAttendance(cmd.Context(), args[0])
			if err != nil {
				if msg := hrmsclient.ServerMessage(err); msg != "" {
					return displayError(msg, err)
				}
				return fmt.Errorf("failed to load attendance for %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			e := history.Employee
			fmt.Fprintf(out, "%s (%s), %s\n", e.FullName, e.EmployeeCode, e.Department)
			fmt.Fprintf(out, "Present: %d  Absent: %d  Total: %d  Rate: %d%%\n",
				history.TotalPresent, history.TotalAbsent, history.TotalRecords,
				viewmodel.PerEmployeeRate(int64(history.TotalPresent), int64(history.TotalAbsent)))

			if len(history.Records) == 0 {
				_, err := fmt.Fprintln(out, msgNoRecords)
				return err
			}
			return renderRecords(out, history.Records)
		},
	}
}

func printLedger(w io.Writer, l *viewmodel.Ledger, employeeCode string) error {
	records := l.FilterByEmployee(employeeCode)
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, msgNoRecords)
		return err
	}
	return renderRecords(w, records)
}
