package bugbash

// Seed returns the bug bashes a fresh workbench starts with.
func Seed() []BugBash {
	return []BugBash{
		{
			ID:           "BASH-1714608000000",
			Title:        "Portal 2.0 release bash",
			Participants: []string{"Aisha Rahman", "Daniel Lim", "Priya Nair"},
			StartTime:    "2024-05-02T09:00:00Z",
			EndTime:      "2024-05-02T12:00:00Z",
			ReportedBugs: []string{"BUG-1714620000000"},
			Results:      "1 high severity bug found in login error handling",
		},
	}
}
