package qareport

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns reports whose title, project or group contains query,
// optionally narrowed to one RAG status.
func Search(reports []QaReport, query string, rag RagStatus) []QaReport {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(reports, func(r QaReport, _ int) bool {
		if rag != "" && r.RagStatus != rag {
			return false
		}
		return q == "" ||
			strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.ProjectName), q) ||
			strings.Contains(strings.ToLower(r.Group), q)
	})
}

// Groups returns the distinct report groups in first-seen order.
func Groups(reports []QaReport) []string {
	return lo.Uniq(lo.Map(reports, func(r QaReport, _ int) string { return r.Group }))
}
