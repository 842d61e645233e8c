// Package rtm holds the requirements traceability matrix: requirements
// linked to the test cases that cover them, with coverage derived from the
// linked cases' latest execution status.
package rtm

import (
	"errors"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/samber/lo"
)

var (
	// ErrInvalidRequirementID is returned when an entry has no requirement ID.
	ErrInvalidRequirementID = errors.New("requirement id is required")

	// ErrInvalidRequirement is returned when an entry has no requirement text.
	ErrInvalidRequirement = errors.New("requirement description is required")
)

// Coverage is the derived test status of a requirement.
type Coverage string

const (
	CoverageNotCovered Coverage = "Not Covered"
	CoverageFailed     Coverage = "Failed"
	CoverageBlocked    Coverage = "Blocked"
	CoverageInProgress Coverage = "In Progress"
	CoveragePassed     Coverage = "Passed"
)

// Entry is one requirement row of the matrix.
type Entry struct {
	ID            string   `json:"id"`
	RequirementID string   `json:"requirementId"`
	Requirement   string   `json:"requirement"`
	Module        string   `json:"module"`
	TestCaseIDs   []string `json:"testCaseIds"`
	Remarks       string   `json:"remarks"`
}

// Validate checks the fields required at creation.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.RequirementID) == "" {
		return ErrInvalidRequirementID
	}
	if strings.TrimSpace(e.Requirement) == "" {
		return ErrInvalidRequirement
	}
	return nil
}

// LinkedCases returns the cases in cases whose IDs the entry links, in link
// order. Unknown IDs are skipped.
func (e *Entry) LinkedCases(cases []testcase.TestCase) []testcase.TestCase {
	byID := lo.KeyBy(cases, func(tc testcase.TestCase) string { return tc.ID })
	return lo.FilterMap(e.TestCaseIDs, func(id string, _ int) (testcase.TestCase, bool) {
		tc, ok := byID[id]
		return tc, ok
	})
}

// CoverageOf derives the entry's coverage from the linked cases: any
// failure wins, then any block, then any case not yet run. An entry with no
// resolvable links is not covered.
func CoverageOf(e Entry, cases []testcase.TestCase) Coverage {
	linked := e.LinkedCases(cases)
	if len(linked) == 0 {
		return CoverageNotCovered
	}

	has := func(s testcase.Status) bool {
		return lo.ContainsBy(linked, func(tc testcase.TestCase) bool { return tc.Status == s })
	}
	switch {
	case has(testcase.StatusFailed):
		return CoverageFailed
	case has(testcase.StatusBlocked):
		return CoverageBlocked
	case lo.ContainsBy(linked, func(tc testcase.TestCase) bool { return tc.Status != testcase.StatusPassed }):
		return CoverageInProgress
	default:
		return CoveragePassed
	}
}

// Summary counts entries by coverage.
func Summary(entries []Entry, cases []testcase.TestCase) map[Coverage]int {
	out := map[Coverage]int{
		CoverageNotCovered: 0,
		CoverageFailed:     0,
		CoverageBlocked:    0,
		CoverageInProgress: 0,
		CoveragePassed:     0,
	}
	for _, e := range entries {
		out[CoverageOf(e, cases)]++
	}
	return out
}

// FromTestCases builds one entry per distinct requirement ID referenced by
// cases, linking every case that names it. Entries keep first-seen order.
func FromTestCases(cases []testcase.TestCase) []Entry {
	withReq := lo.Filter(cases, func(tc testcase.TestCase, _ int) bool { return tc.RequirementID != "" })
	groups := lo.GroupBy(withReq, func(tc testcase.TestCase) string { return tc.RequirementID })
	reqIDs := lo.Uniq(lo.Map(withReq, func(tc testcase.TestCase, _ int) string { return tc.RequirementID }))

	return lo.Map(reqIDs, func(req string, _ int) Entry {
		return Entry{
			ID:            "RTM-" + req,
			RequirementID: req,
			Requirement:   req,
			TestCaseIDs:   lo.Map(groups[req], func(tc testcase.TestCase, _ int) string { return tc.ID }),
		}
	})
}
