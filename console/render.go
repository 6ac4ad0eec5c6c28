package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

func PrintRooms(w io.Writer, rooms []models.Room) {
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tCATEGORY\tSTATUS\tPRICE/NIGHT")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Number, r.Category, r.Status, formatMoney(r.PricePerNight))
	}
	tw.Flush()
}

func PrintBookings(w io.Writer, bookings []models.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROOM\tGUEST\tCHECK-IN\tCHECK-OUT\tNIGHTS\tTOTAL")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
			b.ID, b.RoomNumber, b.GuestName,
			utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut),
			b.Nights(), formatMoney(b.TotalCost))
	}
	tw.Flush()
}

func PrintGuests(w io.Writer, guests []models.Guest) {
	if len(guests) == 0 {
		fmt.Fprintln(w, "No guests.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCONTACT\tBOOKINGS")
	for _, g := range guests {
		ids := make([]string, 0, len(g.BookingIDs))
		for _, id := range g.BookingIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Name, g.ContactInfo, strings.Join(ids, ","))
	}
	tw.Flush()
}

// Describe turns a store failure into the line shown to the operator.
func Describe(err error) string {
	switch {
	case errors.Is(err, services.ErrPersist):
		return fmt.Sprintf("Warning: the change is kept but could not be saved (%v).", err)
	case errors.Is(err, services.ErrInvalidRoomNumber):
		return "Invalid room number."
	case errors.Is(err, services.ErrRoomUnavailable):
		return "Room is not available."
	case errors.Is(err, services.ErrInvalidDates):
		return "Check-in date must be before check-out date."
	case errors.Is(err, services.ErrRoomNotOccupied):
		return "Room is not occupied."
	case errors.Is(err, services.ErrNoActiveBooking):
		return "No active booking found for this room. Use 'Set room status' to release it."
	case errors.Is(err, services.ErrDuplicateRoom):
		return "Room number already exists."
	case errors.Is(err, services.ErrInvalidRoom):
		return fmt.Sprintf("Invalid room: %v.", err)
	case errors.Is(err, services.ErrInvalidStatus):
		return "Only Vacant or UnderMaintenance can be set by hand."
	case errors.Is(err, services.ErrGuestNotFound):
		return "Guest not found."
	}
	return fmt.Sprintf("Error: %v", err)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
