package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cmlabs-hris/hrms-lite/internal/viewmodel"
	"github.com/spf13/cobra"
)

const (
	msgNoEmployees      = "No employees found. Add one to get started."
	msgNoEmployeesMatch = "No employees match your search"
)

func newEmployeesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "List, add and delete employees",
	}
	cmd.AddCommand(
		newEmployeesListCommand(a),
		newEmployeesAddCommand(a),
		newEmployeesDeleteCommand(a),
	)
	return cmd
}

func newEmployeesListCommand(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := viewmodel.NewDirectory(a.api, nil)
			defer d.Close()

			if err := d.LoadAll(cmd.Context()); err != nil {
				return err
			}
			return printDirectory(cmd.OutOrStdout(), d, search)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, employee ID, email or department")
	return cmd
}

func newEmployeesAddCommand(a *app) *cobra.Command {
	var in viewmodel.EmployeeInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := viewmodel.NewDirectory(a.api, nil)
			defer d.Close()

			if _, err := d.Create(cmd.Context(), in); err != nil {
				return displayError(d.Form().Error, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.Form().Notice)

			if err := d.LoadAll(cmd.Context()); err != nil {
				return err
			}
			return printDirectory(out, d, "")
		},
	}
	cmd.Flags().StringVar(&in.EmployeeCode, "id", "", "employee ID")
	cmd.Flags().StringVar(&in.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Department, "department", "", "department")
	return cmd
}

func newEmployeesDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete EMPLOYEE_ID",
		Short: "Delete an employee and their attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := viewmodel.NewDirectory(a.api, confirmerFor(cmd, yes))
			defer d.Close()

			out := cmd.OutOrStdout()
			err := d.Remove(cmd.Context(), args[0])
			if errors.Is(err, viewmodel.ErrCancelled) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Employee %s deleted.\n", args[0])

			if err := d.LoadAll(cmd.Context()); err != nil {
				return err
			}
			return printDirectory(out, d, "")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func printDirectory(w io.Writer, d *viewmodel.Directory, search string) error {
	if d.Empty() {
		_, err := fmt.Fprintln(w, msgNoEmployees)
		return err
	}
	list := d.Filter(search)
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, msgNoEmployeesMatch)
		return err
	}
	return renderEmployees(w, list)
}
