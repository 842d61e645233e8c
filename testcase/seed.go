package testcase

// Seed returns the test cases a fresh workbench starts with.
func Seed() []TestCase {
	return []TestCase{
		{
			ID:             "TC-001",
			Title:          "Login with valid credentials",
			Preconditions:  "User account exists and is verified",
			Steps:          "1. Open the login page\n2. Enter a valid email and password\n3. Click Sign in",
			TestData:       "qa.user@example.com / Passw0rd!",
			ExpectedResult: "User lands on the dashboard",
			ActualResult:   "User lands on the dashboard",
			Status:         StatusPassed,
			ExecutedBy:     "Aisha Rahman",
			ExecutionDate:  "2024-05-02",
			Tester:         "Aisha Rahman",
			RequirementID:  "REQ-AUTH-01",
		},
		{
			ID:             "TC-002",
			Title:          "Login with wrong password",
			Preconditions:  "User account exists",
			Steps:          "1. Open the login page\n2. Enter a valid email and a wrong password\n3. Click Sign in",
			TestData:       "qa.user@example.com / wrong",
			ExpectedResult: "Inline error 'Invalid credentials' is shown",
			ActualResult:   "Generic error page is shown",
			Status:         StatusFailed,
			ExecutedBy:     "Aisha Rahman",
			ExecutionDate:  "2024-05-02",
			Remarks:        "Raised BUG-1714620000000",
			Tester:         "Aisha Rahman",
			RequirementID:  "REQ-AUTH-01",
		},
		{
			ID:             "TC-003",
			Title:          "Export bug reports to Excel",
			Preconditions:  "At least one bug report exists",
			Steps:          "1. Open Bug Reports\n2. Click Export",
			ExpectedResult: "A BugReports_<date>.xlsx file downloads",
			Status:         StatusNotRun,
			Tester:         "Daniel Lim",
			RequirementID:  "REQ-EXP-02",
		},
	}
}
