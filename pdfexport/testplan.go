package pdfexport

import (
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/testplan"
)

// TestPlanFilename returns Test_Plan_<project>.pdf.
func TestPlanFilename(p testplan.TestPlan) string {
	return SafeName(fmt.Sprintf("Test_Plan_%s.pdf", p.ProjectName))
}

// TestPlanDocument describes a plan as a sequence of tables, one per
// section, without rendering anything.
func TestPlanDocument(p testplan.TestPlan) Document {
	labelled := []float64{0.3, 0.7}
	doc := Document{
		PageSize: "A4",
		Margins:  Margins{Left: 15, Top: 20, Right: 15, Bottom: 20},
		Title:    "Test Plan: " + p.ProjectName,
		Header:   p.ProjectName,
		Footer:   "Page %d of %s",
		FontSize: 10,
	}
	doc.Tables = append(doc.Tables,
		Table{
			Title:  "Document Information",
			Widths: []float64{0.25, 0.25, 0.5},
			HeaderRows: [][]string{
				{"Field", "Value", "Notes"},
			},
			Rows: [][]string{
				{"Project Name", p.ProjectName, ""},
				{"Version", p.Version, ""},
				{"Prepared By", p.PreparedBy, "Author"},
				{"Reviewed By", p.ReviewedBy, "Approver"},
			},
		},
		Table{
			Title:  "Plan Overview",
			Widths: labelled,
			Rows: [][]string{
				{"Introduction", p.Introduction},
				{"Objectives", p.Objectives},
				{"Scope", p.Scope},
				{"Test Strategy", p.TestStrategy},
				{"Test Environment", p.TestEnvironment},
			},
		},
		Table{
			Title:  "Criteria",
			Widths: labelled,
			Rows: [][]string{
				{"Entry Criteria", p.EntryCriteria},
				{"Exit Criteria", p.ExitCriteria},
				{"Deliverables", p.Deliverables},
			},
		},
	)

	roles := Table{Title: "Roles and Responsibilities", Widths: []float64{0.25, 0.25, 0.5},
		HeaderRows: [][]string{{"Role", "Name", "Responsibility"}}}
	for _, r := range p.Roles {
		roles.Rows = append(roles.Rows, []string{r.Role, r.Name, r.Responsibility})
	}
	schedule := Table{Title: "Schedule", Widths: []float64{0.4, 0.2, 0.2, 0.2},
		HeaderRows: [][]string{{"Activity", "Start Date", "End Date", "Owner"}}}
	for _, s := range p.Schedule {
		schedule.Rows = append(schedule.Rows, []string{s.Activity, s.StartDate, s.EndDate, s.Owner})
	}
	risks := Table{Title: "Risks", Widths: []float64{0.35, 0.2, 0.45},
		HeaderRows: [][]string{{"Risk", "Impact", "Mitigation"}}}
	for _, r := range p.Risks {
		risks.Rows = append(risks.Rows, []string{r.Risk, r.Impact, r.Mitigation})
	}
	members := Table{Title: "Team Members", Widths: []float64{1}}
	for _, name := range p.Members {
		if strings.TrimSpace(name) == "" {
			continue
		}
		members.Rows = append(members.Rows, []string{name})
	}
	doc.Tables = append(doc.Tables, roles, schedule, risks, members)
	return doc
}

// TestPlan renders p as a downloadable PDF.
func TestPlan(p testplan.TestPlan) (*Artifact, error) {
	data, err := Render(TestPlanDocument(p))
	if err != nil {
		return nil, err
	}
	return &Artifact{Filename: TestPlanFilename(p), ContentType: ContentType, Data: data}, nil
}
