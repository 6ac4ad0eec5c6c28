package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-desk/services"
	"hotel-desk/storage/textfile"
)

func newMenuStore(t *testing.T) *services.HotelService {
	t.Helper()
	repo, err := textfile.Open(t.TempDir())
	require.NoError(t, err)
	today := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
	return services.NewHotelService(repo, services.WithClock(func() time.Time { return today }))
}

func run(t *testing.T, store *services.HotelService, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(store, in, &out).Run(context.Background()))
	return out.String()
}

func TestMenuBookingFlow(t *testing.T) {
	store := newMenuStore(t)

	out := run(t, store,
		"1", "101", "standard", "100",
		"2", "Alice", "a@x.com", "101", "2024-01-01", "2024-01-03",
		"4",
		"3", "101",
		"0",
	)

	assert.Contains(t, out, "Room 101 added (Standard, 100.00 per night).")
	assert.Contains(t, out, "Booking confirmed. Booking ID: 1, 2 night(s), total cost: 200.00")
	assert.Contains(t, out, "101   Standard  Occupied")
	assert.Contains(t, out, "Guest Alice checked out of room 101. Total cost: 200.00")
	assert.Contains(t, out, "Goodbye.")

	rooms := store.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, "Vacant", string(rooms[0].Status))
}

func TestMenuReportsFailuresAndContinues(t *testing.T) {
	store := newMenuStore(t)

	out := run(t, store,
		"2", "Bob", "b@x.com", "999",
		"1", "abc",
		"1", "102", "penthouse",
		"1", "102", "deluxe", "-5",
		"9",
		"3", "101",
		"0",
	)

	assert.Contains(t, out, "Invalid room number.")
	assert.Contains(t, out, `Invalid number "abc".`)
	assert.Contains(t, out, `Invalid category "penthouse".`)
	assert.Contains(t, out, "Invalid room:")
	assert.Contains(t, out, `Invalid option "9".`)
	assert.Empty(t, store.Rooms())
	assert.Empty(t, store.Bookings())
}

func TestMenuRejectsBadDates(t *testing.T) {
	store := newMenuStore(t)

	out := run(t, store,
		"1", "101", "Deluxe", "250",
		"2", "Alice", "a@x.com", "101", "01/01/2024",
		"2", "Alice", "a@x.com", "101", "2024-01-03", "2024-01-01",
		"0",
	)

	assert.Contains(t, out, "Invalid date format. Use YYYY-MM-DD.")
	assert.Contains(t, out, "Check-in date must be before check-out date.")
	assert.Empty(t, store.Bookings())
	assert.Empty(t, store.Guests())
}

func TestMenuSetStatus(t *testing.T) {
	store := newMenuStore(t)

	out := run(t, store,
		"1", "101", "Superior", "80",
		"7", "101", "under maintenance",
		"2", "Alice", "", "101", "2024-01-01", "2024-01-02",
		"7", "101", "occupied",
		"0",
	)

	assert.Contains(t, out, "Room 101 is now UnderMaintenance.")
	assert.Contains(t, out, "Room is not available.")
	assert.Contains(t, out, "Only Vacant or UnderMaintenance can be set by hand.")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	store := newMenuStore(t)

	out := run(t, store, "1", "101")
	assert.NotContains(t, out, "Goodbye.")
	assert.Empty(t, store.Rooms())
}

func TestMenuListsEmptyCollections(t *testing.T) {
	out := run(t, newMenuStore(t), "4", "5", "6", "0")

	assert.Contains(t, out, "No rooms.")
	assert.Contains(t, out, "No bookings.")
	assert.Contains(t, out, "No guests.")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "No active booking found for this room. Use 'Set room status' to release it.",
		Describe(services.ErrNoActiveBooking))
	assert.Equal(t, "Error: boom", Describe(errors.New("boom")))
	assert.Contains(t, Describe(services.ErrPersist), "could not be saved")
}
