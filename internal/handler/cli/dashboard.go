package cli

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show attendance totals and per-employee summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := viewmodel.NewDashboard(a.api)
			defer d.Close()

			if err := d.Load(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderTotals(out, d.State().Data); err != nil {
				return err
			}
			fmt.Fprintln(out)

			if d.Empty() {
				_, err := fmt.Fprintln(out, msgNoEmployees)
				return err
			}
			rows := d.Filter(search)
			if len(rows) == 0 {
				_, err := fmt.Fprintln(out, msgNoEmployeesMatch)
				return err
			}
			return renderSummaries(out, rows)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, department or employee ID")
	return cmd
}
