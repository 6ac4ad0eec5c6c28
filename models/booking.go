package models

import "time"

// DateLayout is the textual form of check-in and check-out dates.
const DateLayout = "2006-01-02"

// Booking is immutable once created.
type Booking struct {
	ID         int       `json:"id"`
	RoomNumber int       `json:"roomNumber"`
	GuestName  string    `json:"guestName"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	TotalCost  float64   `json:"totalCost"`
}

func (b Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// DateOnly drops the clock part and pins the date to UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts whole calendar days from checkIn to checkOut.
// The result is negative when checkOut comes first.
func NightsBetween(checkIn, checkOut time.Time) int {
	ci := DateOnly(checkIn)
	co := DateOnly(checkOut)
	return int(co.Sub(ci).Hours() / 24)
}
