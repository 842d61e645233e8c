package bugreport

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// NewForm returns the create/edit dialog for bug reports. A blank ID is
// replaced by BUG-<unix ms> on submit.
func NewForm(store Store, now func() time.Time) *form.Controller[BugReport] {
	if now == nil {
		now = time.Now
	}
	return form.New[BugReport](store, form.Config[BugReport]{
		Defaults: func() BugReport {
			return BugReport{
				Severity:     LevelMedium,
				Priority:     LevelMedium,
				DateReported: spreadsheet.Date(now()),
			}
		},
		Required: []form.Field[BugReport]{
			form.Required("title", func(b *BugReport) string { return b.Title }),
			form.Required("module", func(b *BugReport) string { return b.Module }),
			form.Required("severity", func(b *BugReport) string { return string(b.Severity) }),
			form.Required("priority", func(b *BugReport) string { return string(b.Priority) }),
			form.Required("reportedBy", func(b *BugReport) string { return b.ReportedBy }),
		},
		Validate: func(b *BugReport) error { return b.Validate() },
		ID:       func(b *BugReport) string { return b.ID },
		AssignID: func(b *BugReport, now time.Time) {
			b.ID = idgen.Prefixed(IDPrefix, now)
		},
		Now: now,
	})
}
