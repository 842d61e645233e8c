package testsuite

import (
	"strconv"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/samber/lo"
)

// ExportPrefix is the filename prefix of test suite workbooks.
const ExportPrefix = "TestSuites"

// Columns is the spreadsheet layout of a test suite. Embedded cases export
// as their IDs and count; they are not imported.
func Columns() []spreadsheet.Column[TestSuite] {
	return []spreadsheet.Column[TestSuite]{
		{Header: "Suite ID", Get: func(s *TestSuite) string { return s.ID }, Set: func(s *TestSuite, v string) { s.ID = v }, Default: spreadsheet.PlaceholderID("TS")},
		{Header: "Name", Get: func(s *TestSuite) string { return s.Name }, Set: func(s *TestSuite, v string) { s.Name = v }},
		{Header: "Description", Get: func(s *TestSuite) string { return s.Description }, Set: func(s *TestSuite, v string) { s.Description = v }},
		{Header: "Status", Get: func(s *TestSuite) string { return string(s.Status) }, Set: func(s *TestSuite, v string) { s.Status = Status(v) }, Default: func() string { return string(StatusDraft) }},
		{Header: "Owner", Get: func(s *TestSuite) string { return s.Owner }, Set: func(s *TestSuite, v string) { s.Owner = v }},
		{Header: "Test Cases", Get: func(s *TestSuite) string { return strconv.Itoa(len(s.TestCases)) }},
		{Header: "Test Case IDs", Get: func(s *TestSuite) string {
			return strings.Join(lo.Map(s.TestCases, func(tc testcase.TestCase, _ int) string { return tc.ID }), ", ")
		}},
		{Header: "Created At", Get: func(s *TestSuite) string { return s.CreatedAt }},
		{Header: "Updated At", Get: func(s *TestSuite) string { return s.UpdatedAt }},
	}
}
