package qareport

import (
	"fmt"
	"strconv"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// ExportPrefix is the filename prefix of report workbooks.
const ExportPrefix = "QAReports"

// Columns is the spreadsheet layout of a report overview. Counters are
// export-only.
func Columns() []spreadsheet.Column[QaReport] {
	count := func(f func(*QaReport) int) func(*QaReport) string {
		return func(r *QaReport) string { return strconv.Itoa(f(r)) }
	}
	return []spreadsheet.Column[QaReport]{
		{Header: "Report ID", Get: func(r *QaReport) string { return r.ID }, Set: func(r *QaReport, v string) { r.ID = v }, Default: spreadsheet.PlaceholderID(IDPrefix)},
		{Header: "Title", Get: func(r *QaReport) string { return r.Title }, Set: func(r *QaReport, v string) { r.Title = v }},
		{Header: "Group", Get: func(r *QaReport) string { return r.Group }, Set: func(r *QaReport, v string) { r.Group = v }},
		{Header: "Project Name", Get: func(r *QaReport) string { return r.ProjectName }, Set: func(r *QaReport, v string) { r.ProjectName = v }},
		{Header: "QA Lead", Get: func(r *QaReport) string { return r.QaLead }, Set: func(r *QaReport, v string) { r.QaLead = v }},
		{Header: "Version", Get: func(r *QaReport) string { return r.Version }, Set: func(r *QaReport, v string) { r.Version = v }},
		{Header: "RAG Status", Get: func(r *QaReport) string { return string(r.RagStatus) }, Set: func(r *QaReport, v string) { r.RagStatus = RagStatus(v) }, Default: func() string { return string(RagGreen) }},
		{Header: "Start Date", Get: func(r *QaReport) string { return r.StartDate }, Set: func(r *QaReport, v string) { r.StartDate = v }, Default: spreadsheet.Today},
		{Header: "End Date", Get: func(r *QaReport) string { return r.EndDate }, Set: func(r *QaReport, v string) { r.EndDate = v }, Default: spreadsheet.Today},
		{Header: "Total Defects", Get: count(func(r *QaReport) int { return r.DefectsDistribution.Total() })},
		{Header: "Test Cases", Get: count(func(r *QaReport) int { return r.TestCaseExecution.Total })},
		{Header: "Executed", Get: count(func(r *QaReport) int { return r.TestCaseExecution.Executed })},
		{Header: "Pass Rate", Get: func(r *QaReport) string { return fmt.Sprintf("%.1f%%", r.TestCaseExecution.PassRate()) }},
		{Header: "Summary", Get: func(r *QaReport) string { return r.Summary }, Set: func(r *QaReport, v string) { r.Summary = v }},
	}
}
