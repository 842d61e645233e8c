package testsuite

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns suites whose name, description or owner contains query.
func Search(suites []TestSuite, query string) []TestSuite {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return suites
	}
	return lo.Filter(suites, func(s TestSuite, _ int) bool {
		return strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) ||
			strings.Contains(strings.ToLower(s.Owner), q)
	})
}
