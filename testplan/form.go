package testplan

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
)

// NewForm returns the create/edit dialog for test plans.
func NewForm(store Store, now func() time.Time) *form.Controller[TestPlan] {
	return form.New[TestPlan](store, form.Config[TestPlan]{
		Defaults: func() TestPlan {
			return TestPlan{
				Version:  "1.0",
				Roles:    []Role{},
				Schedule: []ScheduleEntry{},
				Risks:    []Risk{},
				Members:  []string{},
			}
		},
		Required: []form.Field[TestPlan]{
			form.Required("projectName", func(p *TestPlan) string { return p.ProjectName }),
			form.Required("preparedBy", func(p *TestPlan) string { return p.PreparedBy }),
		},
		Validate: func(p *TestPlan) error { return p.Validate() },
		ID:       func(p *TestPlan) string { return p.ID },
		AssignID: func(p *TestPlan, now time.Time) {
			p.ID = idgen.Prefixed("PLAN", now)
		},
		Now: now,
	})
}
