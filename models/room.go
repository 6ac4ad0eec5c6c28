package models

import (
	"fmt"
	"strings"
)

type RoomStatus string

const (
	StatusVacant           RoomStatus = "Vacant"
	StatusOccupied         RoomStatus = "Occupied"
	StatusUnderMaintenance RoomStatus = "UnderMaintenance"
)

// ParseRoomStatus accepts the symbolic name in any case, with or without
// separators ("under maintenance", "UNDER_MAINTENANCE").
func ParseRoomStatus(raw string) (RoomStatus, error) {
	switch normalizeSymbol(raw) {
	case "vacant":
		return StatusVacant, nil
	case "occupied":
		return StatusOccupied, nil
	case "undermaintenance", "maintenance":
		return StatusUnderMaintenance, nil
	}
	return "", fmt.Errorf("unknown room status %q", raw)
}

type Room struct {
	Number        int          `json:"roomNumber"`
	Category      RoomCategory `json:"category"`
	Status        RoomStatus   `json:"status"`
	PricePerNight float64      `json:"pricePerNight"`
}

// IsVacant reports whether the room can be booked.
func (r Room) IsVacant() bool { return r.Status == StatusVacant }

func normalizeSymbol(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
	return s
}
