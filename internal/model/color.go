package model

// Color is a named tag color. Colors are seeded once and never change.
type Color struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex" validate:"hexcolor6"`
}

// DefaultColorID identifies the fallback color used when an entry's color is unknown
const DefaultColorID int64 = 1

// DefaultColor returns the fallback color ("anoy", white)
func DefaultColor() Color {
	return Color{ID: DefaultColorID, Name: "anoy", Hex: "#FFFFFF"}
}
