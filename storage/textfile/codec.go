package textfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-desk/models"
)

// Field counts per record kind.
const (
	roomFields    = 4
	guestFields   = 2
	bookingFields = 6
)

// FormatPrice renders a price in the shortest decimal form that parses back
// to the same value ("100", "99.5").
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func encodeRoom(r models.Room) []string {
	return []string{
		strconv.Itoa(r.Number),
		string(r.Category),
		string(r.Status),
		FormatPrice(r.PricePerNight),
	}
}

func decodeRoom(fields []string) (models.Room, error) {
	if len(fields) != roomFields {
		return models.Room{}, fmt.Errorf("want %d fields, got %d", roomFields, len(fields))
	}
	number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Room{}, fmt.Errorf("room number: %w", err)
	}
	category, err := models.ParseCategory(fields[1])
	if err != nil {
		return models.Room{}, err
	}
	status, err := models.ParseRoomStatus(fields[2])
	if err != nil {
		return models.Room{}, err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return models.Room{}, fmt.Errorf("price: %w", err)
	}
	return models.Room{Number: number, Category: category, Status: status, PricePerNight: price}, nil
}

func encodeGuest(g models.Guest) []string {
	return []string{g.Name, g.ContactInfo}
}

func decodeGuest(fields []string) (models.Guest, error) {
	if len(fields) != guestFields {
		return models.Guest{}, fmt.Errorf("want %d fields, got %d", guestFields, len(fields))
	}
	return models.Guest{Name: fields[0], ContactInfo: fields[1]}, nil
}

func encodeBooking(b models.Booking) []string {
	return []string{
		strconv.Itoa(b.ID),
		strconv.Itoa(b.RoomNumber),
		b.GuestName,
		b.CheckIn.Format(models.DateLayout),
		b.CheckOut.Format(models.DateLayout),
		FormatPrice(b.TotalCost),
	}
}

func decodeBooking(fields []string) (models.Booking, error) {
	if len(fields) != bookingFields {
		return models.Booking{}, fmt.Errorf("want %d fields, got %d", bookingFields, len(fields))
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking id: %w", err)
	}
	room, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return models.Booking{}, fmt.Errorf("room number: %w", err)
	}
	checkIn, err := time.Parse(models.DateLayout, strings.TrimSpace(fields[3]))
	if err != nil {
		return models.Booking{}, fmt.Errorf("check-in date: %w", err)
	}
	checkOut, err := time.Parse(models.DateLayout, strings.TrimSpace(fields[4]))
	if err != nil {
		return models.Booking{}, fmt.Errorf("check-out date: %w", err)
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return models.Booking{}, fmt.Errorf("total cost: %w", err)
	}
	return models.Booking{
		ID:         id,
		RoomNumber: room,
		GuestName:  fields[2],
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalCost:  cost,
	}, nil
}
