package bugreport

// Seed returns the bug reports a fresh workbench starts with.
func Seed() []BugReport {
	return []BugReport{
		{
			ID:               "BUG-1714620000000",
			Title:            "Wrong password shows generic error page",
			Module:           "Authentication",
			Description:      "Submitting a wrong password renders the 500 page instead of an inline error.",
			Severity:         LevelHigh,
			Priority:         LevelHigh,
			ReportedBy:       "Aisha Rahman",
			DateReported:     "2024-05-02",
			StepsToReproduce: "1. Open login\n2. Enter a valid email and a wrong password\n3. Submit",
			ExpectedResult:   "Inline 'Invalid credentials' message",
			ActualResult:     "HTTP 500 error page",
			AssignedTo:       "Wei Jie Tan",
			Environment:      "Staging, Chrome 124",
		},
		{
			ID:               "BUG-1714706400000",
			Title:            "Export button misaligned on small screens",
			Module:           "Reports",
			Description:      "The export button overlaps the filter bar below 768px.",
			Severity:         LevelLow,
			Priority:         LevelMedium,
			ReportedBy:       "Daniel Lim",
			DateReported:     "2024-05-03",
			StepsToReproduce: "1. Resize the window to 700px\n2. Open Bug Reports",
			ExpectedResult:   "Button wraps below the filter bar",
			ActualResult:     "Button overlaps the filter bar",
			AssignedTo:       "Wei Jie Tan",
			Environment:      "Staging, Firefox 125",
			DateResolved:     "2024-05-06",
		},
	}
}
