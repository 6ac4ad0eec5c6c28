package models

import "fmt"

// RoomCategory is the tier a room is sold under.
type RoomCategory string

const (
	CategoryStandard   RoomCategory = "Standard"
	CategorySuperior   RoomCategory = "Superior"
	CategoryDeluxe     RoomCategory = "Deluxe"
	CategoryConnecting RoomCategory = "Connecting"
)

// Categories lists every tier in display order.
func Categories() []RoomCategory {
	return []RoomCategory{CategoryStandard, CategorySuperior, CategoryDeluxe, CategoryConnecting}
}

func (c RoomCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a tier by name, case-insensitively.
func ParseCategory(raw string) (RoomCategory, error) {
	want := normalizeSymbol(raw)
	for _, c := range Categories() {
		if normalizeSymbol(string(c)) == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown room category %q", raw)
}
