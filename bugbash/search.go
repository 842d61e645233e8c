package bugbash

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Search returns bashes whose title or participants contain query and,
// when status is set, whose status at now matches.
func Search(bashes []BugBash, query string, status Status, now time.Time) []BugBash {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(bashes, func(b BugBash, _ int) bool {
		if status != "" && b.StatusAt(now) != status {
			return false
		}
		if q == "" {
			return true
		}
		if strings.Contains(strings.ToLower(b.Title), q) {
			return true
		}
		return lo.ContainsBy(b.Participants, func(p string) bool {
			return strings.Contains(strings.ToLower(p), q)
		})
	})
}
