package services

import (
	"fmt"

	"hotel-desk/models"
)

// findGuest is the single place guests are matched: exact name, first
// record wins. Moving to a synthetic guest id only has to change this.
func (s *HotelService) findGuest(name string) int {
	for i := range s.guests {
		if s.guests[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *HotelService) copyGuests() []models.Guest {
	out := make([]models.Guest, 0, len(s.guests))
	for _, g := range s.guests {
		g.BookingIDs = append([]int(nil), g.BookingIDs...)
		out = append(out, g)
	}
	return out
}

// Guests returns every guest in the order they first booked.
func (s *HotelService) Guests() []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyGuests()
}

func (s *HotelService) Guest(name string) (models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gi := s.findGuest(name)
	if gi < 0 {
		return models.Guest{}, fmt.Errorf("%w: %q", ErrGuestNotFound, name)
	}
	g := s.guests[gi]
	g.BookingIDs = append([]int(nil), g.BookingIDs...)
	return g, nil
}

// GuestBookings resolves the guest's booking ids to booking records.
func (s *HotelService) GuestBookings(name string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gi := s.findGuest(name)
	if gi < 0 {
		return nil, fmt.Errorf("%w: %q", ErrGuestNotFound, name)
	}
	out := make([]models.Booking, 0, len(s.guests[gi].BookingIDs))
	for _, id := range s.guests[gi].BookingIDs {
		// ids are 1..N in creation order
		if id >= 1 && id <= len(s.bookings) && s.bookings[id-1].ID == id {
			out = append(out, s.bookings[id-1])
			continue
		}
		for _, b := range s.bookings {
			if b.ID == id {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}
