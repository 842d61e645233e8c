package bugreport

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidTitle is returned when a bug report has no title.
	ErrInvalidTitle = errors.New("bug title is required")

	// ErrInvalidModule is returned when a bug report has no module.
	ErrInvalidModule = errors.New("bug module is required")

	// ErrInvalidSeverity is returned for a severity outside the known set.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidPriority is returned for a priority outside the known set.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Level is used for both severity and priority.
type Level string

const (
	LevelCritical Level = "Critical"
	LevelHigh     Level = "High"
	LevelMedium   Level = "Medium"
	LevelLow      Level = "Low"
)

// Levels lists every level from most to least urgent.
var Levels = []Level{LevelCritical, LevelHigh, LevelMedium, LevelLow}

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	switch l {
	case LevelCritical, LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// ParseLevel matches s case-insensitively. Unknown input is LevelMedium.
func ParseLevel(s string) Level {
	for _, l := range Levels {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l
		}
	}
	return LevelMedium
}

// Status is derived from DateResolved and never stored.
type Status string

const (
	StatusOpen     Status = "Open"
	StatusResolved Status = "Resolved"
)

// BugReport is a logged defect.
type BugReport struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Module              string `json:"module"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailedDescription"`
	Severity            Level  `json:"severity"`
	Priority            Level  `json:"priority"`
	ReportedBy          string `json:"reportedBy"`
	DateReported        string `json:"dateReported"`
	StepsToReproduce    string `json:"stepsToReproduce"`
	ExpectedResult      string `json:"expectedResult"`
	ActualResult        string `json:"actualResult"`
	AssignedTo          string `json:"assignedTo"`
	Environment         string `json:"environment"`
	Comments            string `json:"comments"`
	Remarks             string `json:"remarks"`
	DateResolved        string `json:"dateResolved,omitempty"`
}

// Status reports Resolved once a resolution date is recorded.
func (b *BugReport) Status() Status {
	if strings.TrimSpace(b.DateResolved) != "" {
		return StatusResolved
	}
	return StatusOpen
}

// Validate checks the fields required at creation.
func (b *BugReport) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(b.Module) == "" {
		return ErrInvalidModule
	}
	if !b.Severity.IsValid() {
		return ErrInvalidSeverity
	}
	if !b.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}
