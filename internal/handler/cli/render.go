package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
	"github.com/cmlabs-hris/hrms-lite/internal/viewmodel"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderEmployees(w io.Writer, list []hrmsclient.Employee) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tEMAIL\tDEPARTMENT")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.EmployeeCode, e.FullName, e.Email, e.Department)
	}
	return tw.Flush()
}

func renderRecords(w io.Writer, records []hrmsclient.AttendanceRecord) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE ID\tNAME\tDATE\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.EmployeeCode, r.EmployeeName, r.Date, r.Status)
	}
	return tw.Flush()
}

func renderTotals(w io.Writer, s hrmsclient.DashboardSummary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total employees\t%d\n", s.TotalEmployees)
	fmt.Fprintf(tw, "Attendance records\t%d\n", s.TotalAttendanceRecords)
	fmt.Fprintf(tw, "Present\t%d\t%d%% attendance rate\n", s.TotalPresent, viewmodel.AttendanceRate(s))
	fmt.Fprintf(tw, "Absent\t%d\t%d%% absence rate\n", s.TotalAbsent, viewmodel.AbsenceRate(s))
	return tw.Flush()
}

func renderSummaries(w io.Writer, rows []hrmsclient.EmployeeSummary) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tDEPARTMENT\tPRESENT\tABSENT\tRATE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d%%\n",
			r.EmployeeCode, r.FullName, r.Department, r.TotalPresent, r.TotalAbsent,
			viewmodel.PerEmployeeRate(r.TotalPresent, r.TotalAbsent))
	}
	return tw.Flush()
}
