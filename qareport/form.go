package qareport

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// NewForm returns the create/edit dialog for QA reports.
func NewForm(store Store, now func() time.Time) *form.Controller[QaReport] {
	if now == nil {
		now = time.Now
	}
	return form.New[QaReport](store, form.Config[QaReport]{
		Defaults: func() QaReport {
			today := spreadsheet.Date(now())
			return QaReport{
				RagStatus:  RagGreen,
				StartDate:  today,
				EndDate:    today,
				BugDetails: []BugDetail{},
			}
		},
		Required: []form.Field[QaReport]{
			form.Required("title", func(r *QaReport) string { return r.Title }),
			form.Required("projectName", func(r *QaReport) string { return r.ProjectName }),
		},
		Validate: func(r *QaReport) error { return r.Validate() },
		ID:       func(r *QaReport) string { return r.ID },
		AssignID: func(r *QaReport, now time.Time) {
			r.ID = idgen.Prefixed(IDPrefix, now)
		},
		Now: now,
	})
}
