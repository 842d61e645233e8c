package bugreport

import (
	"strings"

	"github.com/samber/lo"
)

// Filter narrows a bug list. Empty fields match everything.
type Filter struct {
	Query    string
	Severity Level
	Priority Level
	Status   Status
	Module   string
}

// Search returns the bugs matching f. Query matches ID, title, module,
// description and assignee case-insensitively.
func Search(bugs []BugReport, f Filter) []BugReport {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return lo.Filter(bugs, func(b BugReport, _ int) bool {
		if f.Severity != "" && b.Severity != f.Severity {
			return false
		}
		if f.Priority != "" && b.Priority != f.Priority {
			return false
		}
		if f.Status != "" && b.Status() != f.Status {
			return false
		}
		if f.Module != "" && !strings.EqualFold(b.Module, f.Module) {
			return false
		}
		if q == "" {
			return true
		}
		return lo.ContainsBy([]string{b.ID, b.Title, b.Module, b.Description, b.AssignedTo}, func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		})
	})
}

// Modules returns the distinct modules in first-seen order.
func Modules(bugs []BugReport) []string {
	return lo.Uniq(lo.Map(bugs, func(b BugReport, _ int) string { return b.Module }))
}
