package rtm

import (
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
)

// ExportPrefix is the filename prefix of matrix workbooks.
const ExportPrefix = "RTM"

// Columns is the spreadsheet layout of the matrix. Coverage is derived from
// cases at export time and is not imported.
func Columns(cases func() []testcase.TestCase) []spreadsheet.Column[Entry] {
	return []spreadsheet.Column[Entry]{
		{Header: "RTM ID", Get: func(e *Entry) string { return e.ID }, Set: func(e *Entry, v string) { e.ID = v }, Default: spreadsheet.PlaceholderID(IDPrefix)},
		{Header: "Requirement ID", Get: func(e *Entry) string { return e.RequirementID }, Set: func(e *Entry, v string) { e.RequirementID = v }},
		{Header: "Requirement", Get: func(e *Entry) string { return e.Requirement }, Set: func(e *Entry, v string) { e.Requirement = v }},
		{Header: "Module", Get: func(e *Entry) string { return e.Module }, Set: func(e *Entry, v string) { e.Module = v }},
		{Header: "Test Case IDs", Get: func(e *Entry) string { return strings.Join(e.TestCaseIDs, ", ") }, Set: func(e *Entry, v string) { e.TestCaseIDs = splitIDs(v) }},
		{Header: "Coverage", Get: func(e *Entry) string {
			if cases == nil {
				return string(CoverageNotCovered)
			}
			return string(CoverageOf(*e, cases()))
		}},
		{Header: "Remarks", Get: func(e *Entry) string { return e.Remarks }, Set: func(e *Entry, v string) { e.Remarks = v }},
	}
}

func splitIDs(v string) []string {
	ids := []string{}
	for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' || r == '\n' }) {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
