package testcase

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
)

// NewForm returns the create/edit dialog for test cases. The ID is typed by
// the user, so there is no generator.
func NewForm(store Store, now func() time.Time) *form.Controller[TestCase] {
	return form.New[TestCase](store, form.Config[TestCase]{
		Defaults: func() TestCase {
			return TestCase{Status: StatusNotRun}
		},
		Required: []form.Field[TestCase]{
			form.Required("id", func(tc *TestCase) string { return tc.ID }),
			form.Required("title", func(tc *TestCase) string { return tc.Title }),
		},
		Validate: func(tc *TestCase) error { return tc.Validate() },
		ID:       func(tc *TestCase) string { return tc.ID },
		Now:      now,
	})
}
