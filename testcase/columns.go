package testcase

import "github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"

// ExportPrefix is the filename prefix of test case workbooks.
const ExportPrefix = "TestCases"

// Columns is the spreadsheet layout of a test case.
func Columns() []spreadsheet.Column[TestCase] {
	return []spreadsheet.Column[TestCase]{
		{Header: "Test Case ID", Get: func(tc *TestCase) string { return tc.ID }, Set: func(tc *TestCase, v string) { tc.ID = v }, Default: spreadsheet.PlaceholderID("TC")},
		{Header: "Title", Get: func(tc *TestCase) string { return tc.Title }, Set: func(tc *TestCase, v string) { tc.Title = v }},
		{Header: "Preconditions", Get: func(tc *TestCase) string { return tc.Preconditions }, Set: func(tc *TestCase, v string) { tc.Preconditions = v }},
		{Header: "Steps", Get: func(tc *TestCase) string { return tc.Steps }, Set: func(tc *TestCase, v string) { tc.Steps = v }},
		{Header: "Test Data", Get: func(tc *TestCase) string { return tc.TestData }, Set: func(tc *TestCase, v string) { tc.TestData = v }},
		{Header: "Expected Result", Get: func(tc *TestCase) string { return tc.ExpectedResult }, Set: func(tc *TestCase, v string) { tc.ExpectedResult = v }},
		{Header: "Actual Result", Get: func(tc *TestCase) string { return tc.ActualResult }, Set: func(tc *TestCase, v string) { tc.ActualResult = v }},
		{Header: "Status", Get: func(tc *TestCase) string { return string(tc.Status) }, Set: func(tc *TestCase, v string) { tc.Status = ParseStatus(v) }},
		{Header: "Executed By", Get: func(tc *TestCase) string { return tc.ExecutedBy }, Set: func(tc *TestCase, v string) { tc.ExecutedBy = v }},
		{Header: "Execution Date", Get: func(tc *TestCase) string { return tc.ExecutionDate }, Set: func(tc *TestCase, v string) { tc.ExecutionDate = v }, Default: spreadsheet.Today},
		{Header: "Remarks", Get: func(tc *TestCase) string { return tc.Remarks }, Set: func(tc *TestCase, v string) { tc.Remarks = v }},
		{Header: "Tester", Get: func(tc *TestCase) string { return tc.Tester }, Set: func(tc *TestCase, v string) { tc.Tester = v }},
		{Header: "Requirement ID", Get: func(tc *TestCase) string { return tc.RequirementID }, Set: func(tc *TestCase, v string) { tc.RequirementID = v }},
	}
}
