package db

// DefaultColors is the palette seeded on first run
func DefaultColors() []ColorRecord {
	return []ColorRecord{
		{ID: 1, Hex: "#FFFFFF", Name: "anoy"},
		{ID: 2, Hex: "#E57373", Name: "Home"},
		{ID: 3, Hex: "#F06292", Name: "BF/GF"},
		{ID: 4, Hex: "#CE93D8", Name: "FRIEND"},
		{ID: 5, Hex: "#2196F3", Name: "Family"},
		{ID: 6, Hex: "#00ACC1", Name: "Work"},
		{ID: 7, Hex: "#26A69A", Name: "BestFriend"},
		{ID: 8, Hex: "#4CAF50", Name: "Test"},
		{ID: 9, Hex: "#8BC34A", Name: "Test"},
		{ID: 10, Hex: "#CDDC39", Name: "Lime"},
		{ID: 11, Hex: "#FFEB3B", Name: "Yellow"},
		{ID: 12, Hex: "#FF9800", Name: "Orange"},
		{ID: 13, Hex: "#BCAAA4", Name: "Brown"},
		{ID: 14, Hex: "#9E9E9E", Name: "Gray"},
	}
}

// DefaultNotes are the sample notes seeded on first run
func DefaultNotes() []NoteRecord {
	return []NoteRecord{
		{ID: 1, Title: "RW Meeting", Content: "Prepare sample project", ColorID: 1},
		{ID: 2, Title: "Bills", Content: "Pay by tomorrow", ColorID: 2},
		{ID: 3, Title: "Pancake recipe", Content: "Milk, eggs, salt, flour...", CanBeCheckedOff: true, ColorID: 3},
		{ID: 4, Title: "Workout", Content: "Running, push ups, pull ups, squats...", ColorID: 4},
	}
}

// DefaultContacts are the sample contacts seeded on first run
func DefaultContacts() []ContactRecord {
	return []ContactRecord{
		{ID: 1, Title: "Weerapong", Content: "Prepare sample project", Number: "0863276130", ColorID: 1},
		{ID: 2, Title: "John smith", Content: "Pay by tomorrow", Number: "0863276130", ColorID: 2},
		{ID: 3, Title: "test", Content: "Milk, eggs, salt, flour...", Number: "0863276130", ColorID: 3},
		{ID: 4, Title: "Workout", Content: "Running, push ups, pull ups, squats...", Number: "0863276130", ColorID: 4},
	}
}
