package viewmodel

import (
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"golang.org/x/text/cases"
)

// fold returns the caseless form of s. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func matchesAny(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(fold(f), query) {
			return true
		}
	}
	return false
}

func filterBy[T any](list []T, query string, fields func(T) []string) []T {
	q := fold(query)
	out := make([]T, 0, len(list))
	for _, item := range list {
		if q == "" || matchesAny(q, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

// FilterEmployees keeps employees whose name, code, email or department
// contains query, ignoring case. An empty query keeps everything.
func FilterEmployees(list []hrmsclient.Employee, query string) []hrmsclient.Employee {
	return filterBy(list, query, func(e hrmsclient.Employee) []string {
		return []string{e.FullName, e.EmployeeCode, e.Email, e.Department}
	})
}

// FilterSummaries keeps summaries whose name, department or code contains
// query, ignoring case.
func FilterSummaries(query string, summaries []hrmsclient.EmployeeSummary) []hrmsclient.EmployeeSummary {
	return filterBy(summaries, query, func(s hrmsclient.EmployeeSummary) []string {
		return []string{s.FullName, s.Department, s.EmployeeCode}
	})
}

// FilterRecordsByEmployee keeps records of one employee; an empty code keeps all.
func FilterRecordsByEmployee(records []hrmsclient.AttendanceRecord, employeeCode string) []hrmsclient.AttendanceRecord {
	out := make([]hrmsclient.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if employeeCode == "" || r.EmployeeCode == employeeCode {
			out = append(out, r)
		}
	}
	return out
}
