// Package cli is the operator front end: cobra commands that drive the view
// models against a running HRMS Lite API.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/cmlabs-hris/hrms-lite/internal/viewmodel"
	"github.com/spf13/cobra"
)

// API is everything the commands need from the HRMS client.
type API interface {
	viewmodel.EmployeeAPI
	viewmodel.AttendanceAPI
	viewmodel.DashboardAPI
	EmployeeAttendance(ctx context.Context, employeeCode string) (hrmsclient.EmployeeAttendance, error)
	Health(ctx context.Context) (string, error)
}

type Options struct {
	Config config.ClientConfig
	// NewAPI builds the client once flags are parsed.
	NewAPI func(cfg config.ClientConfig) API
	// Now overrides the clock used for today's date.
	Now func() time.Time
}

type app struct {
	opts Options
	api  API
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	a := &app{opts: opts}

	var (
		apiURL  string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           "hrmsctl",
		Short:         "Manage HRMS Lite employees and attendance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if timeout <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}
			cfg := a.opts.Config
			cfg.BaseURL = strings.TrimRight(apiURL, "/")
			cfg.Timeout = timeout
			a.api = a.opts.NewAPI(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", opts.Config.BaseURL, "base URL of the HRMS Lite API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", opts.Config.Timeout, "request timeout")

	root.AddCommand(
		newHealthCommand(a),
		newEmployeesCommand(a),
		newAttendanceCommand(a),
		newDashboardCommand(a),
	)
	return root
}

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.api.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("API unreachable: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// displayedError shows a ready message while keeping the cause for errors.Is/As.
type displayedError struct {
	message string
	err     error
}

func (e *displayedError) Error() string { return e.message }

func (e *displayedError) Unwrap() error { return e.err }

// displayError pairs err with the message the operator should see. Without
// a message the cause is returned as is.
func displayError(message string, err error) error {
	if message == "" {
		return err
	}
	return &displayedError{message: message, err: err}
}
