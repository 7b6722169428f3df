package catalog

// Default returns the built-in session catalog.
func Default() []Vehicle {
	return []Vehicle{
		{
			ID:          "crzr-001",
			Name:        "Tesla Model Y Performance",
			Type:        Electric,
			Location:    "San Francisco",
			Rating:      4.9,
			Reviews:     212,
			PricePerDay: 189,
			Status:      StatusAvailable,
			Features:    []string{"320 mi range", "Autopilot", "AWD", "Fast charging"},
		},
		{
			ID:          "crzr-002",
			Name:        "BMW X5 M Sport",
			Type:        SUV,
			Location:    "Los Angeles",
			Rating:      4.8,
			Reviews:     146,
			PricePerDay: 175,
			Status:      StatusAvailable,
			Features:    []string{"Premium interior", "Heads-up display", "AWD"},
		},
		{
			ID:          "crzr-003",
			Name:        "Toyota Prius Hybrid",
			Type:        Sedan,
			Location:    "San Francisco",
			Rating:      4.7,
			Reviews:     320,
			PricePerDay: 78,
			Status:      StatusAvailable,
			Features:    []string{"Hybrid fuel efficiency", "Smart Assist", "Apple CarPlay"},
		},
		{
			ID:          "crzr-004",
			Name:        "Mercedes S-Class Chauffeur",
			Type:        Luxury,
			Location:    "Los Angeles",
			Rating:      4.95,
			Reviews:     98,
			PricePerDay: 240,
			Status:      StatusUnavailable,
			Features:    []string{"Professional driver", "On-board Wi-Fi", "Complimentary drinks"},
		},
		{
			ID:          "crzr-005",
			Name:        "Honda CR-V Comfort",
			Type:        SUV,
			Location:    "San Jose",
			Rating:      4.6,
			Reviews:     285,
			PricePerDay: 92,
			Status:      StatusAvailable,
			Features:    []string{"Spacious cargo", "Eco mode", "Lane Assist"},
		},
	}
}
