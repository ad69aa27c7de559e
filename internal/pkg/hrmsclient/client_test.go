package hrmsclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.ClientConfig{BaseURL: srv.URL + "/api/v1", Timeout: 2 * time.Second}, nil)
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListEmployees(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/employees/", r.URL.Path)
		writeEnvelope(w, http.StatusOK, `{"success":true,"status_code":200,"message":"Employees fetched successfully",
			"data":[{"id":"1","employee_id":"E1","full_name":"Ann Lee","email":"ann@example.com","department":"Engineering"}]}`)
	})

	employees, err := c.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "E1", employees[0].EmployeeCode)
	assert.Equal(t, "Engineering", employees[0].Department)
}

func TestCreateEmployee_SendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "E1", body["employee_id"])
		assert.Equal(t, "ann@example.com", body["email"])
		writeEnvelope(w, http.StatusCreated, `{"success":true,"status_code":201,"data":{"id":"1","employee_id":"E1"}}`)
	})

	created, err := c.CreateEmployee(context.Background(), NewEmployee{
		EmployeeCode: "E1", FullName: "Ann Lee", Email: "ann@example.com", Department: "Engineering",
	})

	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{
			name:     "top level message",
			status:   http.StatusConflict,
			body:     `{"success":false,"status_code":409,"message":"Employee ID already exists","error":{"code":"CONFLICT","message":"Employee ID already exists"}}`,
			wantMsg:  "Employee ID already exists",
			wantCode: "CONFLICT",
		},
		{
			name:     "nested message only",
			status:   http.StatusNotFound,
			body:     `{"success":false,"error":{"code":"NOT_FOUND","message":"Employee not found"}}`,
			wantMsg:  "Employee not found",
			wantCode: "NOT_FOUND",
		},
		{
			name:    "no message",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, tt.body)
			})

			err := c.DeleteEmployee(context.Background(), "E1")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMsg, ServerMessage(err))
		})
	}
}

func TestNonJSONErrorHasNoMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.Dashboard(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestTransportErrorHasNoServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(config.ClientConfig{BaseURL: srv.URL + "/api/v1", Timeout: time.Second}, nil)

	_, err := c.ListEmployees(context.Background())

	require.Error(t, err)
	assert.Empty(t, ServerMessage(err))
}

func TestDeletePaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		writeEnvelope(w, http.StatusOK, `{"success":true,"status_code":200,"message":"deleted"}`)
	})

	require.NoError(t, c.DeleteEmployee(context.Background(), "E 1"))
	require.NoError(t, c.DeleteAttendance(context.Background(), "0190a5c4-8f2e-7b3a-9c1d-2e3f4a5b6c7d"))

	assert.Equal(t, []string{
		"/api/v1/employees/E 1",
		"/api/v1/attendance/0190a5c4-8f2e-7b3a-9c1d-2e3f4a5b6c7d",
	}, paths)
}

func TestListAttendance_FilterDate(t *testing.T) {
	var queries []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("filter_date"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":[{"id":"a1","employee_id":"E1","employee_name":"Ann Lee","date":"2024-03-01","status":"Present"}]}`)
	})

	records, err := c.ListAttendance(context.Background(), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ann Lee", records[0].EmployeeName)

	_, err = c.ListAttendance(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-01", ""}, queries)
}

func TestDashboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dashboard/", r.URL.Path)
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"total_employees":2,"total_attendance_records":3,
			"total_present":2,"total_absent":1,"employees_summary":[{"employee_id":"E1","full_name":"Ann Lee","department":"Eng","total_present":2,"total_absent":1}]}}`)
	})

	summary, err := c.Dashboard(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TotalAttendanceRecords)
	require.Len(t, summary.EmployeesSummary, 1)
	assert.EqualValues(t, 2, summary.EmployeesSummary[0].TotalPresent)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		writeEnvelope(w, http.StatusOK, `{"success":true,"status_code":200,"message":"HRMS Lite API Running"}`)
	})

	msg, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "HRMS Lite API Running", msg)
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListEmployees(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
