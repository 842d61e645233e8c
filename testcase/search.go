package testcase

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns the test cases whose ID, title or tester contains query,
// case-insensitively, optionally narrowed to one status.
func Search(cases []TestCase, query string, status Status) []TestCase {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(cases, func(tc TestCase, _ int) bool {
		if status != "" && tc.Status != status {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(tc.ID), q) ||
			strings.Contains(strings.ToLower(tc.Title), q) ||
			strings.Contains(strings.ToLower(tc.Tester), q)
	})
}

// CountByStatus tallies cases per status.
func CountByStatus(cases []TestCase) map[Status]int {
	groups := lo.GroupBy(cases, func(tc TestCase) Status { return tc.Status })
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = len(groups[s])
	}
	return counts
}
