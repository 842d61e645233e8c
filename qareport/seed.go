package qareport

// Seed returns the reports a fresh workbench starts with.
func Seed() []QaReport {
	return []QaReport{
		{
			ID:             "QA-1715000000000",
			Title:          "Portal 2.0 Sprint 12 QA Report",
			Group:          "Customer Portal",
			ProjectName:    "Customer Portal 2.0",
			ProjectManager: "Priya Nair",
			QaLead:         "Aisha Rahman",
			Version:        "2.0.0-rc1",
			Environment:    "Staging",
			RagStatus:      RagAmber,
			StartDate:      "2024-05-01",
			EndDate:        "2024-05-14",
			DefectsDistribution: DefectsDistribution{
				Critical: 0, High: 1, Medium: 3, Low: 2,
			},
			TestDistribution: TestDistribution{
				Functional: 42, Regression: 30, Integration: 12, Performance: 4, Security: 6,
			},
			TestCaseExecution: TestCaseExecution{
				Total: 94, Executed: 88, Passed: 80, Failed: 5, Blocked: 3, NotRun: 6,
			},
			DefectStatus: DefectStatus{
				Open: 2, InProgress: 1, Resolved: 2, Closed: 1, Reopened: 0,
			},
			BugDetails: []BugDetail{
				{BugID: "BUG-1714620000000", Title: "Wrong password shows generic error page", Severity: "High", Status: "Open", AssignedTo: "Wei Jie Tan", Module: "Authentication"},
				{BugID: "BUG-1714706400000", Title: "Export button misaligned on small screens", Severity: "Low", Status: "Resolved", AssignedTo: "Wei Jie Tan", Module: "Reports"},
			},
			Summary:   "Release is on track. One high severity login defect must be fixed before sign-off.",
			CreatedAt: "2024-05-14T09:00:00.000Z",
			UpdatedAt: "2024-05-14T09:00:00.000Z",
		},
	}
}
