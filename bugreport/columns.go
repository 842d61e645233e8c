package bugreport

import "github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"

// ExportPrefix is the filename prefix of bug report workbooks.
const ExportPrefix = "BugReports"

// Columns is the spreadsheet layout of a bug report. Status is derived and
// export-only.
func Columns() []spreadsheet.Column[BugReport] {
	return []spreadsheet.Column[BugReport]{
		{Header: "Bug ID", Get: func(b *BugReport) string { return b.ID }, Set: func(b *BugReport, v string) { b.ID = v }, Default: spreadsheet.PlaceholderID(IDPrefix)},
		{Header: "Title", Get: func(b *BugReport) string { return b.Title }, Set: func(b *BugReport, v string) { b.Title = v }},
		{Header: "Module", Get: func(b *BugReport) string { return b.Module }, Set: func(b *BugReport, v string) { b.Module = v }},
		{Header: "Description", Get: func(b *BugReport) string { return b.Description }, Set: func(b *BugReport, v string) { b.Description = v }},
		{Header: "Detailed Description", Get: func(b *BugReport) string { return b.DetailedDescription }, Set: func(b *BugReport, v string) { b.DetailedDescription = v }},
		{Header: "Severity", Get: func(b *BugReport) string { return string(b.Severity) }, Set: func(b *BugReport, v string) { b.Severity = ParseLevel(v) }},
		{Header: "Priority", Get: func(b *BugReport) string { return string(b.Priority) }, Set: func(b *BugReport, v string) { b.Priority = ParseLevel(v) }},
		{Header: "Status", Get: func(b *BugReport) string { return string(b.Status()) }},
		{Header: "Reported By", Get: func(b *BugReport) string { return b.ReportedBy }, Set: func(b *BugReport, v string) { b.ReportedBy = v }},
		{Header: "Date Reported", Get: func(b *BugReport) string { return b.DateReported }, Set: func(b *BugReport, v string) { b.DateReported = v }, Default: spreadsheet.Today},
		{Header: "Steps to Reproduce", Get: func(b *BugReport) string { return b.StepsToReproduce }, Set: func(b *BugReport, v string) { b.StepsToReproduce = v }},
		{Header: "Expected Result", Get: func(b *BugReport) string { return b.ExpectedResult }, Set: func(b *BugReport, v string) { b.ExpectedResult = v }},
		{Header: "Actual Result", Get: func(b *BugReport) string { return b.ActualResult }, Set: func(b *BugReport, v string) { b.ActualResult = v }},
		{Header: "Assigned To", Get: func(b *BugReport) string { return b.AssignedTo }, Set: func(b *BugReport, v string) { b.AssignedTo = v }},
		{Header: "Environment", Get: func(b *BugReport) string { return b.Environment }, Set: func(b *BugReport, v string) { b.Environment = v }},
		{Header: "Comments", Get: func(b *BugReport) string { return b.Comments }, Set: func(b *BugReport, v string) { b.Comments = v }},
		{Header: "Remarks", Get: func(b *BugReport) string { return b.Remarks }, Set: func(b *BugReport, v string) { b.Remarks = v }},
		{Header: "Date Resolved", Get: func(b *BugReport) string { return b.DateResolved }, Set: func(b *BugReport, v string) { b.DateResolved = v }},
	}
}
