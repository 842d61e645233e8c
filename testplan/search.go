package testplan

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns plans whose project name or author contains query.
func Search(plans []TestPlan, query string) []TestPlan {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return plans
	}
	return lo.Filter(plans, func(p TestPlan, _ int) bool {
		return strings.Contains(strings.ToLower(p.ProjectName), q) ||
			strings.Contains(strings.ToLower(p.PreparedBy), q)
	})
}
