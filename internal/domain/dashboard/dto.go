package dashboard

// DashboardResponse is the pre-aggregated summary served to the dashboard view.
// TotalPresent + TotalAbsent is expected to equal TotalAttendanceRecords.
type DashboardResponse struct {
	TotalEmployees         int64             `json:"total_employees"`
	TotalAttendanceRecords int64             `json:"total_attendance_records"`
	TotalPresent           int64             `json:"total_present"`
	TotalAbsent            int64             `json:"total_absent"`
	EmployeesSummary       []EmployeeSummary `json:"employees_summary"`
}

// EmployeeSummary is one employee's present/absent counts
type EmployeeSummary struct {
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	TotalPresent int64  `json:"total_present"`
	TotalAbsent  int64  `json:"total_absent"`
}
