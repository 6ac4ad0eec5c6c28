package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomStatus(t *testing.T) {
	tests := []struct {
		in   string
		want RoomStatus
	}{
		{"Vacant", StatusVacant},
		{"occupied", StatusOccupied},
		{"UnderMaintenance", StatusUnderMaintenance},
		{"UNDER_MAINTENANCE", StatusUnderMaintenance},
		{" under maintenance ", StatusUnderMaintenance},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRoomStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRoomStatus("booked")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("deluxe")
	require.NoError(t, err)
	assert.Equal(t, CategoryDeluxe, got)

	_, err = ParseCategory("Penthouse")
	assert.Error(t, err)

	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, RoomCategory("").Valid())
}

func TestNightsBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 2, NightsBetween(day("2024-01-01"), day("2024-01-03")))
	assert.Equal(t, 1, NightsBetween(day("2024-02-28"), day("2024-02-29")))
	assert.Equal(t, 0, NightsBetween(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, -3, NightsBetween(day("2024-01-04"), day("2024-01-01")))

	// clock parts and zones are ignored
	ci := time.Date(2024, 3, 30, 23, 30, 0, 0, time.FixedZone("x", 5*3600))
	co := time.Date(2024, 4, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, NightsBetween(ci, co))
}
