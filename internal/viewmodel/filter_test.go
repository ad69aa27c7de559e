package viewmodel

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/stretchr/testify/assert"
)

var sampleEmployees = []hrmsclient.Employee{
	{ID: "1", EmployeeCode: "ENG-001", FullName: "Ann Lee", Email: "ann@example.com", Department: "Engineering"},
	{ID: "2", EmployeeCode: "SAL-002", FullName: "Bo Ström", Email: "bo@example.com", Department: "Sales"},
	{ID: "3", EmployeeCode: "ENG-003", FullName: "Cara Diaz", Email: "cara@corp.io", Department: "Engineering"},
	{ID: "4", EmployeeCode: "OPS-004", FullName: "Dmitri Straße", Email: "dmitri@corp.io", Department: "Operations"},
}

var sampleQueries = []string{"", "eng", "ENG", "ann", "Sales", "corp.io", "ström", "STRASSE", "xyz", "-00", "a"}

func TestFilterEmployees_Idempotent(t *testing.T) {
	for _, q := range sampleQueries {
		once := FilterEmployees(sampleEmployees, q)
		twice := FilterEmployees(once, q)
		assert.Equal(t, once, twice, "query %q", q)
	}
}

func TestFilterEmployees_CaseInsensitive(t *testing.T) {
	for _, q := range sampleQueries {
		want := FilterEmployees(sampleEmployees, q)
		assert.Equal(t, want, FilterEmployees(sampleEmployees, strings.ToUpper(q)), "upper %q", q)
		assert.Equal(t, want, FilterEmployees(sampleEmployees, strings.ToLower(q)), "lower %q", q)
	}
}

func TestFilterEmployees_Fields(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"ENG-001", "SAL-002", "ENG-003", "OPS-004"}},
		{query: "engineering", want: []string{"ENG-001", "ENG-003"}},
		{query: "corp.io", want: []string{"ENG-003", "OPS-004"}},
		{query: "sal-", want: []string{"SAL-002"}},
		{query: "strasse", want: []string{"OPS-004"}},
		{query: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := []string{}
			for _, e := range FilterEmployees(sampleEmployees, tt.query) {
				got = append(got, e.EmployeeCode)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterEmployees_NilList(t *testing.T) {
	assert.Empty(t, FilterEmployees(nil, "a"))
	assert.NotNil(t, FilterEmployees(nil, ""))
}

func TestFilterSummaries(t *testing.T) {
	summaries := []hrmsclient.EmployeeSummary{
		{EmployeeCode: "E1", FullName: "Ann Lee", Department: "Engineering"},
		{EmployeeCode: "E2", FullName: "Bo Ray", Department: "Sales"},
	}

	for _, q := range []string{"", "e1", "SALES", "ray", "zzz"} {
		once := FilterSummaries(q, summaries)
		assert.Equal(t, once, FilterSummaries(q, once), "idempotent %q", q)
		assert.Equal(t, once, FilterSummaries(strings.ToUpper(q), summaries), "case %q", q)
	}

	got := FilterSummaries("sales", summaries)
	assert.Len(t, got, 1)
	assert.Equal(t, "E2", got[0].EmployeeCode)

	// email is not a summary field
	assert.Empty(t, FilterSummaries("example.com", summaries))
}

func TestFilterRecordsByEmployee(t *testing.T) {
	records := []hrmsclient.AttendanceRecord{
		{ID: "a1", EmployeeCode: "E1", Status: attendance.StatusPresent},
		{ID: "a2", EmployeeCode: "E2", Status: attendance.StatusAbsent},
		{ID: "a3", EmployeeCode: "E1", Status: attendance.StatusAbsent},
	}

	assert.Len(t, FilterRecordsByEmployee(records, ""), 3)
	assert.Len(t, FilterRecordsByEmployee(records, "E1"), 2)
	assert.Empty(t, FilterRecordsByEmployee(records, "E9"))
	// exact match, not substring
	assert.Empty(t, FilterRecordsByEmployee(records, "E"))
}
