package testsuite

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
)

// NewForm returns the create/edit dialog for test suites. New suites are
// keyed by the submit timestamp.
func NewForm(store Store, now func() time.Time) *form.Controller[TestSuite] {
	return form.New[TestSuite](store, form.Config[TestSuite]{
		Defaults: func() TestSuite {
			return TestSuite{Status: StatusDraft, TestCases: []testcase.TestCase{}}
		},
		Required: []form.Field[TestSuite]{
			form.Required("name", func(s *TestSuite) string { return s.Name }),
		},
		Validate: func(s *TestSuite) error { return s.Validate() },
		ID:       func(s *TestSuite) string { return s.ID },
		AssignID: func(s *TestSuite, now time.Time) {
			s.ID = idgen.Timestamp(now)
		},
		Now: now,
	})
}
