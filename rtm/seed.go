package rtm

// Seed returns the matrix a fresh workbench starts with.
func Seed() []Entry {
	return []Entry{
		{
			ID:            "RTM-1714550400000",
			RequirementID: "REQ-AUTH-01",
			Requirement:   "Users can sign in with email and password and see a clear error on failure",
			Module:        "Authentication",
			TestCaseIDs:   []string{"TC-001", "TC-002"},
		},
		{
			ID:            "RTM-1714550400001",
			RequirementID: "REQ-EXP-02",
			Requirement:   "Bug reports can be exported to Excel",
			Module:        "Reports",
			TestCaseIDs:   []string{"TC-003"},
		},
		{
			ID:            "RTM-1714550400002",
			RequirementID: "REQ-PRF-03",
			Requirement:   "Users can update their profile details",
			Module:        "Profile",
			TestCaseIDs:   []string{},
		},
	}
}
