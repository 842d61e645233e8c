package bugbash

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
)

// NewForm returns the create/edit dialog for bug bashes. A blank ID is
// replaced by BASH-<unix ms> on submit.
func NewForm(store Store, now func() time.Time) *form.Controller[BugBash] {
	return form.New[BugBash](store, form.Config[BugBash]{
		Defaults: func() BugBash {
			return BugBash{Participants: []string{}, ReportedBugs: []string{}}
		},
		Required: []form.Field[BugBash]{
			form.Required("title", func(b *BugBash) string { return b.Title }),
			form.Required("startTime", func(b *BugBash) string { return b.StartTime }),
			form.Required("endTime", func(b *BugBash) string { return b.EndTime }),
		},
		Validate: func(b *BugBash) error { return b.Validate() },
		ID:       func(b *BugBash) string { return b.ID },
		AssignID: func(b *BugBash, now time.Time) {
			b.ID = idgen.Prefixed(IDPrefix, now)
		},
		Now: now,
	})
}
