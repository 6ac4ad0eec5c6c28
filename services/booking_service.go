package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotel-desk/models"
	"hotel-desk/utils"
)

// Checkout is what check-out reports back about the booking it closed.
type Checkout struct {
	RoomNumber int     `json:"roomNumber"`
	BookingID  int     `json:"bookingId"`
	GuestName  string  `json:"guestName"`
	TotalCost  float64 `json:"totalCost"`
}

// BookRoom books a vacant room for a guest. Dates are taken as calendar
// dates; check-out is exclusive. A missing room and an occupied room both
// fail with ErrRoomUnavailable. An existing guest keeps its contact info,
// the contactInfo argument only applies to a new guest.
func (s *HotelService) BookRoom(
	ctx context.Context,
	guestName, contactInfo string,
	roomNumber int,
	checkIn, checkOut time.Time,
) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := models.DateOnly(checkIn)
	co := models.DateOnly(checkOut)
	if !ci.Before(co) {
		s.metrics.fail(ErrInvalidDates)
		return models.Booking{}, fmt.Errorf("%w: check-in %s must be before check-out %s",
			ErrInvalidDates, ci.Format(models.DateLayout), co.Format(models.DateLayout))
	}

	idx := s.roomIndex(roomNumber)
	if idx < 0 || !s.rooms[idx].IsVacant() {
		s.metrics.fail(ErrRoomUnavailable)
		return models.Booking{}, fmt.Errorf("%w: room %d", ErrRoomUnavailable, roomNumber)
	}

	gi := s.findGuest(guestName)
	if gi < 0 {
		s.guests = append(s.guests, models.Guest{Name: guestName, ContactInfo: contactInfo})
		gi = len(s.guests) - 1
		log.Printf("👤 New guest %q (%s)", guestName, utils.MaskContact(contactInfo))
	}

	nights := models.NightsBetween(ci, co)
	booking := models.Booking{
		ID:         len(s.bookings) + 1,
		RoomNumber: roomNumber,
		GuestName:  guestName,
		CheckIn:    ci,
		CheckOut:   co,
		TotalCost:  s.rooms[idx].PricePerNight * float64(nights),
	}
	s.bookings = append(s.bookings, booking)
	s.guests[gi].BookingIDs = append(s.guests[gi].BookingIDs, booking.ID)
	s.rooms[idx].Status = models.StatusOccupied
	s.metrics.bookingCreated()

	log.Printf("✅ Booking %d: room %d for %q, %d nights, total %.2f",
		booking.ID, roomNumber, guestName, nights, booking.TotalCost)

	return booking, s.save(ctx)
}

// CheckOut releases an occupied room. It looks for the first booking of the
// room whose check-out date is today or later; the booking itself is left
// as is. When no booking matches, the room stays Occupied and
// ErrNoActiveBooking is returned; SetRoomStatus clears such a room.
func (s *HotelService) CheckOut(ctx context.Context, roomNumber int) (Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.roomIndex(roomNumber)
	if idx < 0 || s.rooms[idx].Status != models.StatusOccupied {
		s.metrics.fail(ErrRoomNotOccupied)
		return Checkout{}, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, roomNumber)
	}

	active, ok := s.activeBooking(roomNumber)
	if !ok {
		s.metrics.fail(ErrNoActiveBooking)
		log.Printf("⚠️ Room %d is Occupied but has no booking ending on or after %s",
			roomNumber, s.today().Format(models.DateLayout))
		return Checkout{}, fmt.Errorf("%w: room %d", ErrNoActiveBooking, roomNumber)
	}

	s.rooms[idx].Status = models.StatusVacant
	s.metrics.checkedOut()
	log.Printf("✅ Room %d checked out: %q, total %.2f", roomNumber, active.GuestName, active.TotalCost)

	result := Checkout{
		RoomNumber: roomNumber,
		BookingID:  active.ID,
		GuestName:  active.GuestName,
		TotalCost:  active.TotalCost,
	}
	return result, s.save(ctx)
}

func (s *HotelService) activeBooking(roomNumber int) (models.Booking, bool) {
	today := s.today()
	for _, b := range s.bookings {
		if b.RoomNumber == roomNumber && !models.DateOnly(b.CheckOut).Before(today) {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Bookings returns every booking in creation order.
func (s *HotelService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
