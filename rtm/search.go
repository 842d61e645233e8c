package rtm

import (
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/samber/lo"
)

// Search returns entries whose requirement ID, text or module contains
// query and, when coverage is set, whose derived coverage matches.
func Search(entries []Entry, cases []testcase.TestCase, query string, coverage Coverage) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(entries, func(e Entry, _ int) bool {
		if coverage != "" && CoverageOf(e, cases) != coverage {
			return false
		}
		return q == "" ||
			strings.Contains(strings.ToLower(e.RequirementID), q) ||
			strings.Contains(strings.ToLower(e.Requirement), q) ||
			strings.Contains(strings.ToLower(e.Module), q)
	})
}
