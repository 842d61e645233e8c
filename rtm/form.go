package rtm

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
)

// NewForm returns the create/edit dialog for matrix entries.
func NewForm(store Store, now func() time.Time) *form.Controller[Entry] {
	return form.New[Entry](store, form.Config[Entry]{
		Defaults: func() Entry {
			return Entry{TestCaseIDs: []string{}}
		},
		Required: []form.Field[Entry]{
			form.Required("requirementId", func(e *Entry) string { return e.RequirementID }),
			form.Required("requirement", func(e *Entry) string { return e.Requirement }),
		},
		Validate: func(e *Entry) error { return e.Validate() },
		ID:       func(e *Entry) string { return e.ID },
		AssignID: func(e *Entry, now time.Time) {
			e.ID = idgen.Prefixed(IDPrefix, now)
		},
		Now: now,
	})
}
