package services

import "errors"

// Failure reasons reported by the hotel store. Callers match them with
// errors.Is; the returned errors wrap them with the room, guest or dates
// involved.
var (
	ErrInvalidDates      = errors.New("invalid_dates")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrRoomNotOccupied   = errors.New("room_not_occupied")
	ErrNoActiveBooking   = errors.New("no_active_booking")
	ErrInvalidRoomNumber = errors.New("invalid_room_number")
	ErrDuplicateRoom     = errors.New("duplicate_room")
	ErrInvalidRoom       = errors.New("invalid_room")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrGuestNotFound     = errors.New("guest_not_found")

	// ErrPersist means the in-memory change went through but writing the
	// collections failed. The change is not rolled back.
	ErrPersist = errors.New("persist_failed")
)

