package textfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-desk/models"
	"hotel-desk/storage"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func sampleSnapshot(t *testing.T) storage.Snapshot {
	return storage.Snapshot{
		Rooms: []models.Room{
			{Number: 101, Category: models.CategoryStandard, Status: models.StatusOccupied, PricePerNight: 100},
			{Number: 102, Category: models.CategoryDeluxe, Status: models.StatusVacant, PricePerNight: 149.99},
			{Number: 103, Category: models.CategoryConnecting, Status: models.StatusUnderMaintenance, PricePerNight: 0},
		},
		Guests: []models.Guest{
			{Name: "Alice", ContactInfo: "a@x.com"},
		},
		Bookings: []models.Booking{
			{ID: 1, RoomNumber: 101, GuestName: "Alice", CheckIn: date(t, "2024-01-01"), CheckOut: date(t, "2024-01-03"), TotalCost: 200},
		},
	}
}

func TestStore_MissingFilesLoadEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Rooms)
	assert.Empty(t, snap.Guests)
	assert.Empty(t, snap.Bookings)
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	want := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), want))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_LineFormat(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), sampleSnapshot(t)))

	rooms, err := os.ReadFile(filepath.Join(dir, DefaultRoomsFile))
	require.NoError(t, err)
	assert.Equal(t,
		"101,Standard,Occupied,100\n102,Deluxe,Vacant,149.99\n103,Connecting,UnderMaintenance,0\n",
		string(rooms))

	guests, err := os.ReadFile(filepath.Join(dir, DefaultGuestsFile))
	require.NoError(t, err)
	assert.Equal(t, "Alice,a@x.com\n", string(guests))

	bookings, err := os.ReadFile(filepath.Join(dir, DefaultBookingsFile))
	require.NoError(t, err)
	assert.Equal(t, "1,101,Alice,2024-01-01,2024-01-03,200\n", string(bookings))
}

func TestStore_DelimiterInFreeText(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	snap := storage.Snapshot{
		Guests: []models.Guest{
			{Name: "Smith, John", ContactInfo: `call "front desk", ext 4`},
		},
		Bookings: []models.Booking{
			{ID: 1, RoomNumber: 7, GuestName: "Smith, John", CheckIn: date(t, "2024-05-01"), CheckOut: date(t, "2024-05-02"), TotalCost: 80},
		},
	}
	require.NoError(t, s.Save(context.Background(), snap))

	raw, err := os.ReadFile(filepath.Join(dir, DefaultGuestsFile))
	require.NoError(t, err)
	assert.Equal(t, "\"Smith, John\",\"call \"\"front desk\"\", ext 4\"\n", string(raw))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Guests, got.Guests)
	assert.Equal(t, snap.Bookings, got.Bookings)
}

func TestStore_LoadsPlainLegacyLines(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write(DefaultRoomsFile, "101,Standard,Vacant,100.0\n\n202,SUPERIOR,OCCUPIED,120.5\n")
	write(DefaultGuestsFile, "Bob,555-0100\n")
	write(DefaultBookingsFile, "1,202,Bob,2024-02-10,2024-02-12,241.0\n")

	s, err := Open(dir)
	require.NoError(t, err)
	snap, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Rooms, 2)
	assert.Equal(t, 100.0, snap.Rooms[0].PricePerNight)
	assert.Equal(t, models.CategorySuperior, snap.Rooms[1].Category)
	assert.Equal(t, models.StatusOccupied, snap.Rooms[1].Status)
	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, 241.0, snap.Bookings[0].TotalCost)
	assert.Equal(t, 2, snap.Bookings[0].Nights())
}

func TestStore_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, DefaultRoomsFile),
		[]byte("101,Standard,Vacant,100\nabc,Standard,Vacant,100\n"),
		0644))

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.Load(context.Background())
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestStore_CustomFileNames(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithFileNames("r.csv", "", "b.csv"))
	require.NoError(t, err)

	rooms, guests, bookings := s.Paths()
	assert.Equal(t, filepath.Join(dir, "r.csv"), rooms)
	assert.Equal(t, filepath.Join(dir, DefaultGuestsFile), guests)
	assert.Equal(t, filepath.Join(dir, "b.csv"), bookings)
}

func TestStore_SaveRewritesEverything(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleSnapshot(t)))
	require.NoError(t, s.Save(ctx, storage.Snapshot{}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Rooms)
	assert.Empty(t, got.Guests)
	assert.Empty(t, got.Bookings)
}
