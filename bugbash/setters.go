package bugbash

import "github.com/samber/lo"

// SetTitle returns an UpdateSetter that sets the title.
func SetTitle(title string) UpdateSetter {
	return func(b *BugBash) error {
		if title == "" {
			return ErrInvalidTitle
		}
		b.Title = title
		return nil
	}
}

// SetWindow returns an UpdateSetter that sets the start and end times.
func SetWindow(start, end string) UpdateSetter {
	return func(b *BugBash) error {
		next := *b
		next.StartTime, next.EndTime = start, end
		if next.Title == "" {
			next.Title = "-"
		}
		if err := next.Validate(); err != nil {
			return err
		}
		b.StartTime, b.EndTime = start, end
		return nil
	}
}

// SetParticipants returns an UpdateSetter that replaces the participants.
func SetParticipants(names []string) UpdateSetter {
	names = append([]string{}, names...)
	return func(b *BugBash) error {
		b.Participants = names
		return nil
	}
}

// AddReportedBug returns an UpdateSetter that links a bug report ID once.
func AddReportedBug(bugID string) UpdateSetter {
	return func(b *BugBash) error {
		if !lo.Contains(b.ReportedBugs, bugID) {
			b.ReportedBugs = append(b.ReportedBugs, bugID)
		}
		return nil
	}
}

// SetResults returns an UpdateSetter that records the session results.
func SetResults(results string) UpdateSetter {
	return func(b *BugBash) error {
		b.Results = results
		return nil
	}
}
