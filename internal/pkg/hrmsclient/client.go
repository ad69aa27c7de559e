package hrmsclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/go-resty/resty/v2"
)

// Client talks to the HRMS Lite REST API. It is safe for concurrent use.
type Client struct {
	rc      *resty.Client
	baseURL string
}

func New(cfg config.ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(&slogAdapter{logger: logger})

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("hrms api request",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return &Client{rc: rc, baseURL: cfg.BaseURL}
}

func do[T any](ctx context.Context, c *Client, method, path string, prepare func(*resty.Request)) (T, error) {
	var (
		zero   T
		result envelope[T]
		failed errorEnvelope
	)

	req := c.rc.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&failed)
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !resp.IsSuccess() {
		return zero, &APIError{
			StatusCode: resp.StatusCode(),
			Code:       failed.code(),
			Message:    failed.message(),
		}
	}

	return result.Data, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	return do[[]Employee](ctx, c, http.MethodGet, "/employees/", nil)
}

func (c *Client) CreateEmployee(ctx context.Context, in NewEmployee) (Employee, error) {
	return do[Employee](ctx, c, http.MethodPost, "/employees/", func(r *resty.Request) {
		r.SetBody(in)
	})
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeCode string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/employees/{employee_id}", func(r *resty.Request) {
		r.SetPathParam("employee_id", employeeCode)
	})
	return err
}

// ListAttendance returns every record, or only those on filterDate (YYYY-MM-DD) when set.
func (c *Client) ListAttendance(ctx context.Context, filterDate string) ([]AttendanceRecord, error) {
	return do[[]AttendanceRecord](ctx, c, http.MethodGet, "/attendance/", func(r *resty.Request) {
		if filterDate != "" {
			r.SetQueryParam("filter_date", filterDate)
		}
	})
}

func (c *Client) MarkAttendance(ctx context.Context, in MarkAttendance) (AttendanceRecord, error) {
	return do[AttendanceRecord](ctx, c, http.MethodPost, "/attendance/", func(r *resty.Request) {
		r.SetBody(in)
	})
}

func (c *Client) DeleteAttendance(ctx context.Context, recordID string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/attendance/{attendance_id}", func(r *resty.Request) {
		r.SetPathParam("attendance_id", recordID)
	})
	return err
}

func (c *Client) EmployeeAttendance(ctx context.Context, employeeCode string) (EmployeeAttendance, error) {
	return do[EmployeeAttendance](ctx, c, http.MethodGet, "/attendance/{employee_id}", func(r *resty.Request) {
		r.SetPathParam("employee_id", employeeCode)
	})
}

func (c *Client) Dashboard(ctx context.Context) (DashboardSummary, error) {
	return do[DashboardSummary](ctx, c, http.MethodGet, "/dashboard/", nil)
}

// Health calls the root endpoint of the server behind the base URL and
// returns its message.
func (c *Client) Health(ctx context.Context) (string, error) {
	root, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	root.Path = "/"
	root.RawQuery = ""

	var (
		result envelope[struct{}]
		failed errorEnvelope
	)
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&failed).
		Get(root.String())
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", root, err)
	}
	if !resp.IsSuccess() {
		return "", &APIError{StatusCode: resp.StatusCode(), Code: failed.code(), Message: failed.message()}
	}
	return result.Message, nil
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}
