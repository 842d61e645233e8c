package testsuite

import (
	"errors"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
)

var (
	// ErrInvalidName is returned when a suite has no name.
	ErrInvalidName = errors.New("test suite name is required")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid test suite status")
)

// Status is the lifecycle state of a suite.
type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusDraft     Status = "Draft"
	StatusCompleted Status = "Completed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDraft, StatusCompleted:
		return true
	}
	return false
}

// TestSuite groups snapshots of test cases. TestCases holds copies taken
// when the suite was edited; later edits to the test case store do not
// change them.
type TestSuite struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	TestCases   []testcase.TestCase `json:"testCases"`
	Status      Status              `json:"status"`
	Owner       string              `json:"owner"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

// Validate checks the fields required at creation.
func (s *TestSuite) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidName
	}
	if s.Status != "" && !s.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Progress tallies the embedded test cases by execution status.
func (s *TestSuite) Progress() map[testcase.Status]int {
	return testcase.CountByStatus(s.TestCases)
}
