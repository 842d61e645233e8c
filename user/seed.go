package user

// Seed returns the users a fresh workbench starts with.
func Seed() []User {
	return []User{
		{
			ID:         "7d1c8f0e-3b0a-4c55-9a43-2f7e6b1d9a01",
			FirstName:  "Aisha",
			LastName:   "Rahman",
			Username:   "aisha",
			Email:      "aisha.rahman@example.com",
			Role:       RoleManager,
			IsVerified: true,
			VerifiedAt: "2024-04-01T08:00:00.000Z",
			CreatedAt:  "2024-04-01T08:00:00.000Z",
			Department: "Quality Engineering",
		},
		{
			ID:         "b2e4a6c8-1d3f-4a5b-8c7d-9e0f1a2b3c02",
			FirstName:  "Daniel",
			LastName:   "Lim",
			Username:   "daniel",
			Email:      "daniel.lim@example.com",
			Role:       RoleTester,
			IsVerified: true,
			VerifiedAt: "2024-04-02T08:00:00.000Z",
			CreatedAt:  "2024-04-02T08:00:00.000Z",
			Department: "Quality Engineering",
		},
	}
}
