package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"hotel-desk/models"
)

// AddRoom appends a vacant room and saves.
func (s *HotelService) AddRoom(ctx context.Context, number int, category models.RoomCategory, price float64) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		s.metrics.fail(ErrInvalidRoom)
		return models.Room{}, fmt.Errorf("%w: unknown category %q", ErrInvalidRoom, category)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		s.metrics.fail(ErrInvalidRoom)
		return models.Room{}, fmt.Errorf("%w: price %v", ErrInvalidRoom, price)
	}
	if s.uniqueRooms && s.roomIndex(number) >= 0 {
		s.metrics.fail(ErrDuplicateRoom)
		return models.Room{}, fmt.Errorf("%w: room %d already exists", ErrDuplicateRoom, number)
	}

	room := models.Room{
		Number:        number,
		Category:      category,
		Status:        models.StatusVacant,
		PricePerNight: price,
	}
	s.rooms = append(s.rooms, room)
	s.metrics.roomAdded()
	log.Printf("✅ Room %d added (%s, %.2f per night)", number, category, price)

	return room, s.save(ctx)
}

// ValidateRoomNumber fails with ErrInvalidRoomNumber when no room has the
// number.
func (s *HotelService) ValidateRoomNumber(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roomIndex(number) < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRoomNumber, number)
	}
	return nil
}

// SetRoomStatus is the manual override for rooms: take a room out for
// maintenance, bring it back, or clear an Occupied room that check-out
// could not release. Only booking may make a room Occupied.
func (s *HotelService) SetRoomStatus(ctx context.Context, number int, status models.RoomStatus) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status != models.StatusVacant && status != models.StatusUnderMaintenance {
		s.metrics.fail(ErrInvalidStatus)
		return models.Room{}, fmt.Errorf("%w: cannot set %q by hand", ErrInvalidStatus, status)
	}
	idx := s.roomIndex(number)
	if idx < 0 {
		s.metrics.fail(ErrInvalidRoomNumber)
		return models.Room{}, fmt.Errorf("%w: %d", ErrInvalidRoomNumber, number)
	}

	prev := s.rooms[idx].Status
	s.rooms[idx].Status = status
	if prev == models.StatusOccupied {
		log.Printf("⚠️ Room %d forced from %s to %s", number, prev, status)
	} else {
		log.Printf("✅ Room %d status %s -> %s", number, prev, status)
	}

	return s.rooms[idx], s.save(ctx)
}

// Rooms returns every room in insertion order.
func (s *HotelService) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Room returns the first room with the number.
func (s *HotelService) Room(number int) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.roomIndex(number)
	if idx < 0 {
		return models.Room{}, fmt.Errorf("%w: %d", ErrInvalidRoomNumber, number)
	}
	return s.rooms[idx], nil
}
