// Package storage defines how the hotel store's three collections are
// persisted. Backends live in subpackages.
package storage

import (
	"context"

	"hotel-desk/models"
)

// Snapshot is the full persisted state: every room, guest and booking in
// insertion order.
type Snapshot struct {
	Rooms    []models.Room
	Guests   []models.Guest
	Bookings []models.Booking
}

// Repository loads and saves whole snapshots. Save always rewrites all three
// collections; there are no incremental writes.
type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}
