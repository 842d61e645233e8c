package testplan

import (
	"strconv"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// ExportPrefix is the filename prefix of test plan workbooks.
const ExportPrefix = "TestPlans"

// Columns is the spreadsheet layout of a test plan. The nested tables are
// summarized on export and not imported.
func Columns() []spreadsheet.Column[TestPlan] {
	return []spreadsheet.Column[TestPlan]{
		{Header: "Plan ID", Get: func(p *TestPlan) string { return p.ID }, Set: func(p *TestPlan, v string) { p.ID = v }, Default: spreadsheet.PlaceholderID("PLAN")},
		{Header: "Project Name", Get: func(p *TestPlan) string { return p.ProjectName }, Set: func(p *TestPlan, v string) { p.ProjectName = v }},
		{Header: "Version", Get: func(p *TestPlan) string { return p.Version }, Set: func(p *TestPlan, v string) { p.Version = v }},
		{Header: "Prepared By", Get: func(p *TestPlan) string { return p.PreparedBy }, Set: func(p *TestPlan, v string) { p.PreparedBy = v }},
		{Header: "Reviewed By", Get: func(p *TestPlan) string { return p.ReviewedBy }, Set: func(p *TestPlan, v string) { p.ReviewedBy = v }},
		{Header: "Scope", Get: func(p *TestPlan) string { return p.Scope }, Set: func(p *TestPlan, v string) { p.Scope = v }},
		{Header: "Test Strategy", Get: func(p *TestPlan) string { return p.TestStrategy }, Set: func(p *TestPlan, v string) { p.TestStrategy = v }},
		{Header: "Roles", Get: func(p *TestPlan) string { return strconv.Itoa(len(p.Roles)) }},
		{Header: "Risks", Get: func(p *TestPlan) string { return strconv.Itoa(len(p.Risks)) }},
		{Header: "Members", Get: func(p *TestPlan) string { return strings.Join(p.Members, ", ") }},
	}
}
