package qareport

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidTitle is returned when a report has no title.
	ErrInvalidTitle = errors.New("report title is required")

	// ErrInvalidProjectName is returned when a report has no project name.
	ErrInvalidProjectName = errors.New("report project name is required")

	// ErrInvalidRagStatus is returned for a RAG status outside the known set.
	ErrInvalidRagStatus = errors.New("invalid RAG status")

	// ErrNegativeCount is returned when an aggregate counter is negative.
	ErrNegativeCount = errors.New("counts must not be negative")
)

// RagStatus is the Red/Amber/Green health of a release.
type RagStatus string

const (
	RagRed   RagStatus = "Red"
	RagAmber RagStatus = "Amber"
	RagGreen RagStatus = "Green"
)

// IsValid reports whether r is a known RAG status.
func (r RagStatus) IsValid() bool {
	switch r {
	case RagRed, RagAmber, RagGreen:
		return true
	}
	return false
}

// DefectsDistribution counts defects by severity.
type DefectsDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total sums all severities.
func (d DefectsDistribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// TestDistribution counts test cases by test type.
type TestDistribution struct {
	Functional  int `json:"functional"`
	Regression  int `json:"regression"`
	Integration int `json:"integration"`
	Performance int `json:"performance"`
	Security    int `json:"security"`
}

// Total sums all test types.
func (d TestDistribution) Total() int {
	return d.Functional + d.Regression + d.Integration + d.Performance + d.Security
}

// TestCaseExecution counts test cases by execution outcome.
type TestCaseExecution struct {
	Total    int `json:"total"`
	Executed int `json:"executed"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Blocked  int `json:"blocked"`
	NotRun   int `json:"notRun"`
}

// PassRate is Passed over Executed as a percentage, 0 when nothing ran.
func (e TestCaseExecution) PassRate() float64 {
	if e.Executed == 0 {
		return 0
	}
	return float64(e.Passed) * 100 / float64(e.Executed)
}

// DefectStatus counts defects by workflow state.
type DefectStatus struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Reopened   int `json:"reopened"`
}

// BugDetail is one row of the report's defect table.
type BugDetail struct {
	BugID      string `json:"bugId"`
	Title      string `json:"title"`
	Severity   string `json:"severity"`
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo"`
	Module     string `json:"module"`
}

// QaReport is a point-in-time quality report for a release.
type QaReport struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Group               string              `json:"group"`
	ProjectName         string              `json:"projectName"`
	ProjectManager      string              `json:"projectManager"`
	QaLead              string              `json:"qaLead"`
	Version             string              `json:"version"`
	Environment         string              `json:"environment"`
	RagStatus           RagStatus           `json:"ragStatus"`
	StartDate           string              `json:"startDate"`
	EndDate             string              `json:"endDate"`
	DefectsDistribution DefectsDistribution `json:"defectsDistribution"`
	TestDistribution    TestDistribution    `json:"testDistribution"`
	TestCaseExecution   TestCaseExecution   `json:"testCaseExecution"`
	DefectStatus        DefectStatus        `json:"defectStatus"`
	BugDetails          []BugDetail         `json:"bugDetails"`
	Summary             string              `json:"summary"`
	CreatedAt           string              `json:"createdAt"`
	UpdatedAt           string              `json:"updatedAt"`
}

// Validate checks the fields required at creation.
func (r *QaReport) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(r.ProjectName) == "" {
		return ErrInvalidProjectName
	}
	if r.RagStatus != "" && !r.RagStatus.IsValid() {
		return ErrInvalidRagStatus
	}
	e := r.TestCaseExecution
	for _, n := range []int{e.Total, e.Executed, e.Passed, e.Failed, e.Blocked, e.NotRun} {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}
