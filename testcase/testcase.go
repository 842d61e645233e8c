package testcase

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidID is returned when a test case has no identifier.
	ErrInvalidID = errors.New("test case id is required")

	// ErrInvalidTitle is returned when a test case has no title.
	ErrInvalidTitle = errors.New("test case title is required")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid test case status")
)

// Status is the execution outcome of a test case.
type Status string

const (
	StatusNotRun  Status = "Not Run"
	StatusPassed  Status = "Passed"
	StatusFailed  Status = "Failed"
	StatusBlocked Status = "Blocked"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNotRun, StatusPassed, StatusFailed, StatusBlocked}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotRun, StatusPassed, StatusFailed, StatusBlocked:
		return true
	}
	return false
}

// ParseStatus matches s case-insensitively, ignoring spaces, so "not run",
// "NotRun" and "Not Run" are all StatusNotRun. Unknown input is StatusNotRun.
func ParseStatus(s string) Status {
	key := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	for _, st := range Statuses {
		if strings.ToLower(strings.ReplaceAll(string(st), " ", "")) == key {
			return st
		}
	}
	return StatusNotRun
}

// TestCase is a single manual test with its latest execution result. The
// identifier is chosen by the author, e.g. TC-001.
type TestCase struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Preconditions  string `json:"preconditions"`
	Steps          string `json:"steps"`
	TestData       string `json:"testData"`
	ExpectedResult string `json:"expectedResult"`
	ActualResult   string `json:"actualResult"`
	Status         Status `json:"status"`
	ExecutedBy     string `json:"executedBy"`
	ExecutionDate  string `json:"executionDate"`
	Remarks        string `json:"remarks"`
	Tester         string `json:"tester"`
	RequirementID  string `json:"requirementId,omitempty"`
}

// Validate checks the fields required at creation.
func (tc *TestCase) Validate() error {
	if strings.TrimSpace(tc.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(tc.Title) == "" {
		return ErrInvalidTitle
	}
	if tc.Status != "" && !tc.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
