package testplan

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidProjectName is returned when a plan has no project name.
	ErrInvalidProjectName = errors.New("project name is required")

	// ErrInvalidPreparedBy is returned when a plan has no author.
	ErrInvalidPreparedBy = errors.New("prepared by is required")
)

// Role is one row of the roles and responsibilities table.
type Role struct {
	Role           string `json:"role"`
	Name           string `json:"name"`
	Responsibility string `json:"responsibility"`
}

// ScheduleEntry is one row of the schedule table.
type ScheduleEntry struct {
	Activity  string `json:"activity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Owner     string `json:"owner"`
}

// Risk is one row of the risk register.
type Risk struct {
	Risk       string `json:"risk"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

// TestPlan is a test plan document. ID is generated and independent of
// ProjectName, so two plans may share a project name.
type TestPlan struct {
	ID              string          `json:"id"`
	ProjectName     string          `json:"projectName"`
	Version         string          `json:"version"`
	PreparedBy      string          `json:"preparedBy"`
	ReviewedBy      string          `json:"reviewedBy"`
	Introduction    string          `json:"introduction"`
	Objectives      string          `json:"objectives"`
	Scope           string          `json:"scope"`
	TestStrategy    string          `json:"testStrategy"`
	TestEnvironment string          `json:"testEnvironment"`
	EntryCriteria   string          `json:"entryCriteria"`
	ExitCriteria    string          `json:"exitCriteria"`
	Deliverables    string          `json:"deliverables"`
	Roles           []Role          `json:"roles"`
	Schedule        []ScheduleEntry `json:"schedule"`
	Risks           []Risk          `json:"risks"`
	Members         []string        `json:"members"`
}

// Validate checks the fields required at creation.
func (p *TestPlan) Validate() error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return ErrInvalidProjectName
	}
	if strings.TrimSpace(p.PreparedBy) == "" {
		return ErrInvalidPreparedBy
	}
	return nil
}
