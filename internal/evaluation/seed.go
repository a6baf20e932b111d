package evaluation

// SeedEmployees returns the fixed initial sales roster used when the
// store holds no data yet. Each call returns fresh copies so callers can
// mutate the result freely.
func SeedEmployees() []Employee {
	return []Employee{
		{
			ID:          "user1",
			Name:        "Taro Tanaka",
			Department:  "Sales",
			Position:    "Senior Staff",
			Points:      0,
			Evaluations: []Evaluation{},
		},
		{
			ID:          "user2",
			Name:        "Hanako Sato",
			Department:  "Sales",
			Position:    "Section Chief",
			Points:      0,
			Evaluations: []Evaluation{},
		},
		{
			ID:          "user3",
			Name:        "Jiro Suzuki",
			Department:  "Sales",
			Position:    "Staff",
			Points:      0,
			Evaluations: []Evaluation{},
		},
	}
}
