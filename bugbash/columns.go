package bugbash

import (
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// ExportPrefix is the filename prefix of bug bash workbooks.
const ExportPrefix = "BugBashes"

// Columns is the spreadsheet layout of a bug bash. Status is evaluated at
// now and is export-only.
func Columns(now func() time.Time) []spreadsheet.Column[BugBash] {
	if now == nil {
		now = time.Now
	}
	return []spreadsheet.Column[BugBash]{
		{Header: "Bug Bash ID", Get: func(b *BugBash) string { return b.ID }, Set: func(b *BugBash, v string) { b.ID = v }, Default: spreadsheet.PlaceholderID(IDPrefix)},
		{Header: "Title", Get: func(b *BugBash) string { return b.Title }, Set: func(b *BugBash, v string) { b.Title = v }},
		{Header: "Participants", Get: func(b *BugBash) string { return strings.Join(b.Participants, ", ") }, Set: func(b *BugBash, v string) { b.Participants = splitList(v) }},
		{Header: "Start Time", Get: func(b *BugBash) string { return b.StartTime }, Set: func(b *BugBash, v string) { b.StartTime = v }, Default: spreadsheet.Today},
		{Header: "End Time", Get: func(b *BugBash) string { return b.EndTime }, Set: func(b *BugBash, v string) { b.EndTime = v }, Default: spreadsheet.Today},
		{Header: "Status", Get: func(b *BugBash) string { return string(b.StatusAt(now())) }},
		{Header: "Reported Bugs", Get: func(b *BugBash) string { return strings.Join(b.ReportedBugs, ", ") }, Set: func(b *BugBash, v string) { b.ReportedBugs = splitList(v) }},
		{Header: "Results", Get: func(b *BugBash) string { return b.Results }, Set: func(b *BugBash, v string) { b.Results = v }},
		{Header: "Remarks", Get: func(b *BugBash) string { return b.Remarks }, Set: func(b *BugBash, v string) { b.Remarks = v }},
	}
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
