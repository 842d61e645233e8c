package testsuite

import "github.com/hairizuanbinnoorazman/qa-workbench/testcase"

// Seed returns the suites a fresh workbench starts with.
func Seed() []TestSuite {
	cases := testcase.Seed()
	return []TestSuite{
		{
			ID:          "1714550400000",
			Name:        "Authentication regression",
			Description: "Login and credential handling checks run before every release",
			TestCases:   cases[:2],
			Status:      StatusActive,
			Owner:       "Aisha Rahman",
			CreatedAt:   "2024-05-01T08:00:00.000Z",
			UpdatedAt:   "2024-05-02T10:15:00.000Z",
		},
		{
			ID:          "1714636800000",
			Name:        "Reporting smoke",
			Description: "Export and report generation",
			TestCases:   cases[2:],
			Status:      StatusDraft,
			Owner:       "Daniel Lim",
			CreatedAt:   "2024-05-02T08:00:00.000Z",
			UpdatedAt:   "2024-05-02T08:00:00.000Z",
		},
	}
}
