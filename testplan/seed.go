package testplan

// Seed returns the plans a fresh workbench starts with.
func Seed() []TestPlan {
	return []TestPlan{
		{
			ID:              "PLAN-1714550400000",
			ProjectName:     "Customer Portal 2.0",
			Version:         "1.0",
			PreparedBy:      "Aisha Rahman",
			ReviewedBy:      "Priya Nair",
			Introduction:    "This plan covers functional and regression testing of the Customer Portal 2.0 release.",
			Objectives:      "Verify login, profile management and report export against the release requirements.",
			Scope:           "In scope: web portal. Out of scope: mobile apps, payment gateway internals.",
			TestStrategy:    "Risk-based manual testing with an automated smoke suite on every build.",
			TestEnvironment: "Staging cluster, Chrome and Firefox latest, seeded test accounts.",
			EntryCriteria:   "Build deployed to staging and smoke suite green.",
			ExitCriteria:    "No open Critical or High defects; 95% of planned cases executed.",
			Deliverables:    "Test plan, executed test cases, QA report, defect log.",
			Roles: []Role{
				{Role: "QA Lead", Name: "Aisha Rahman", Responsibility: "Plan, coordinate and report"},
				{Role: "Tester", Name: "Daniel Lim", Responsibility: "Execute test cases and log defects"},
			},
			Schedule: []ScheduleEntry{
				{Activity: "Test design", StartDate: "2024-05-01", EndDate: "2024-05-07", Owner: "Aisha Rahman"},
				{Activity: "Execution", StartDate: "2024-05-08", EndDate: "2024-05-21", Owner: "Daniel Lim"},
			},
			Risks: []Risk{
				{Risk: "Late delivery of the export feature", Impact: "High", Mitigation: "Test export last and extend the cycle if needed"},
			},
			Members: []string{"Aisha Rahman", "Daniel Lim", "Priya Nair"},
		},
	}
}
