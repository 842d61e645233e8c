package bugbash

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidTitle is returned when a bug bash has no title.
	ErrInvalidTitle = errors.New("bug bash title is required")

	// ErrInvalidTimeRange is returned when start or end is missing or the
	// end is before the start.
	ErrInvalidTimeRange = errors.New("bug bash needs a start and an end after it")
)

// Status is derived from EndTime and never stored.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// TimeLayouts are the accepted formats of StartTime and EndTime, tried in order.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses s with the first matching layout in TimeLayouts.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range TimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// BugBash is a time-boxed group testing session.
type BugBash struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	ReportedBugs []string `json:"reportedBugs"`
	Results      string   `json:"results"`
	Remarks      string   `json:"remarks"`
}

// StatusAt reports Active while EndTime is after now. An unparseable end
// time counts as Completed.
func (b *BugBash) StatusAt(now time.Time) Status {
	end, err := ParseTime(b.EndTime)
	if err != nil {
		return StatusCompleted
	}
	if end.After(now) {
		return StatusActive
	}
	return StatusCompleted
}

// Validate checks the fields required at creation.
func (b *BugBash) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle
	}
	start, err := ParseTime(b.StartTime)
	if err != nil {
		return ErrInvalidTimeRange
	}
	end, err := ParseTime(b.EndTime)
	if err != nil || end.Before(start) {
		return ErrInvalidTimeRange
	}
	return nil
}
