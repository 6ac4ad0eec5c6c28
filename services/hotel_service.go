// Package services holds the hotel store: rooms, guests and bookings kept
// in memory and written back through a storage.Repository after every
// change.
package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"hotel-desk/models"
	"hotel-desk/storage"
)

// HotelService owns the three collections. One instance per process,
// shared by pointer. Calls are serialised: each runs to completion before
// the next one starts.
type HotelService struct {
	mu sync.Mutex

	repo        storage.Repository
	now         func() time.Time
	uniqueRooms bool
	metrics     *Metrics

	rooms    []models.Room
	guests   []models.Guest
	bookings []models.Booking
}

type Option func(*HotelService)

// WithClock replaces time.Now for the check-out date filter.
func WithClock(now func() time.Time) Option {
	return func(s *HotelService) { s.now = now }
}

// WithUniqueRoomNumbers makes AddRoom refuse a number that already exists.
// Off by default: duplicates are accepted silently.
func WithUniqueRoomNumbers(on bool) Option {
	return func(s *HotelService) { s.uniqueRooms = on }
}

func WithMetrics(m *Metrics) Option {
	return func(s *HotelService) { s.metrics = m }
}

func NewHotelService(repo storage.Repository, opts ...Option) *HotelService {
	s := &HotelService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load appends the persisted records to whatever is already in memory.
// It is meant to run once at startup; a second call duplicates every
// record.
func (s *HotelService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load hotel data: %w", err)
	}

	s.rooms = append(s.rooms, snap.Rooms...)
	s.guests = append(s.guests, snap.Guests...)
	s.bookings = append(s.bookings, snap.Bookings...)
	s.relinkGuests()
	s.metrics.setOccupied(s.occupiedCount())
	return nil
}

// relinkGuests rebuilds every guest's booking list from the booking
// collection, since the persisted guest record has no booking column.
func (s *HotelService) relinkGuests() {
	for i := range s.guests {
		s.guests[i].BookingIDs = nil
	}
	for _, b := range s.bookings {
		gi := s.findGuest(b.GuestName)
		if gi < 0 {
			log.Printf("⚠️ booking %d references unknown guest %q", b.ID, b.GuestName)
			continue
		}
		s.guests[gi].BookingIDs = append(s.guests[gi].BookingIDs, b.ID)
	}
}

// save rewrites all three collections. Callers hold s.mu.
func (s *HotelService) save(ctx context.Context) error {
	snap := storage.Snapshot{
		Rooms:    append([]models.Room(nil), s.rooms...),
		Guests:   s.copyGuests(),
		Bookings: append([]models.Booking(nil), s.bookings...),
	}

	start := time.Now()
	err := s.repo.Save(ctx, snap)
	s.metrics.observeSave(time.Since(start))
	s.metrics.setOccupied(s.occupiedCount())
	if err != nil {
		log.Printf("❌ Failed to save hotel data: %v", err)
		s.metrics.fail(ErrPersist)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// roomIndex returns the first room with the number, or -1.
func (s *HotelService) roomIndex(number int) int {
	for i := range s.rooms {
		if s.rooms[i].Number == number {
			return i
		}
	}
	return -1
}

func (s *HotelService) occupiedCount() int {
	n := 0
	for _, r := range s.rooms {
		if r.Status == models.StatusOccupied {
			n++
		}
	}
	return n
}

func (s *HotelService) today() time.Time {
	return models.DateOnly(s.now())
}
