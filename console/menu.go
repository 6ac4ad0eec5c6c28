// Package console is the operator's interactive front end: a numbered
// menu read line by line from any reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

const menuText = `
===== Hotel Desk =====
1. Add room
2. Book room
3. Check out
4. Display rooms
5. Display bookings
6. List guests
7. Set room status
0. Exit
`

// errAbandon ends the current action without touching the store.
var errAbandon = errors.New("abandoned")

type Menu struct {
	store *services.HotelService
	in    *bufio.Scanner
	out   io.Writer
}

func New(store *services.HotelService, in io.Reader, out io.Writer) *Menu {
	return &Menu{store: store, in: bufio.NewScanner(in), out: out}
}

// Run loops until the operator picks 0, the input ends or ctx is done.
// Failures are printed and the loop goes back to the menu.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.out, menuText)
		choice, ok := m.ask("Choose an option: ")
		if !ok {
			fmt.Fprintln(m.out)
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = m.addRoom(ctx)
		case "2":
			err = m.bookRoom(ctx)
		case "3":
			err = m.checkOut(ctx)
		case "4":
			PrintRooms(m.out, m.store.Rooms())
		case "5":
			PrintBookings(m.out, m.store.Bookings())
		case "6":
			PrintGuests(m.out, m.store.Guests())
		case "7":
			err = m.setStatus(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintf(m.out, "Invalid option %q.\n", choice)
		}

		switch {
		case err == nil, errors.Is(err, errAbandon):
		case errors.Is(err, io.EOF):
			fmt.Fprintln(m.out)
			return nil
		default:
			fmt.Fprintln(m.out, Describe(err))
		}
	}
}

// ask prints the prompt and returns the next trimmed line; false at end of
// input.
func (m *Menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) askLine(prompt string) (string, error) {
	v, ok := m.ask(prompt)
	if !ok {
		return "", io.EOF
	}
	return v, nil
}

func (m *Menu) askInt(prompt string) (int, error) {
	raw, err := m.askLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid number %q.\n", raw)
		return 0, errAbandon
	}
	return n, nil
}

func (m *Menu) askPrice(prompt string) (float64, error) {
	raw, err := m.askLine(prompt)
	if err != nil {
		return 0, err
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid price %q.\n", raw)
		return 0, errAbandon
	}
	return p, nil
}

func (m *Menu) askDate(prompt string) (time.Time, error) {
	raw, err := m.askLine(prompt)
	if err != nil {
		return time.Time{}, err
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid date format. Use YYYY-MM-DD.")
		return time.Time{}, errAbandon
	}
	return d, nil
}

func (m *Menu) addRoom(ctx context.Context) error {
	number, err := m.askInt("Room number: ")
	if err != nil {
		return err
	}
	raw, err := m.askLine(fmt.Sprintf("Category (%s): ", categoryNames()))
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid category %q.\n", raw)
		return errAbandon
	}
	price, err := m.askPrice("Price per night: ")
	if err != nil {
		return err
	}

	room, err := m.store.AddRoom(ctx, number, category, price)
	if err != nil && !errors.Is(err, services.ErrPersist) {
		return err
	}
	fmt.Fprintf(m.out, "Room %d added (%s, %s per night).\n", room.Number, room.Category, formatMoney(room.PricePerNight))
	return err
}

func (m *Menu) bookRoom(ctx context.Context) error {
	name, err := m.askLine("Guest name: ")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(m.out, "Guest name is required.")
		return errAbandon
	}
	contact, err := m.askLine("Contact info: ")
	if err != nil {
		return err
	}
	number, err := m.askInt("Room number: ")
	if err != nil {
		return err
	}
	if err := m.store.ValidateRoomNumber(number); err != nil {
		return err
	}
	checkIn, err := m.askDate("Check-in date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	checkOut, err := m.askDate("Check-out date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	booking, err := m.store.BookRoom(ctx, name, contact, number, checkIn, checkOut)
	if err != nil && !errors.Is(err, services.ErrPersist) {
		return err
	}
	fmt.Fprintf(m.out, "Booking confirmed. Booking ID: %d, %d night(s), total cost: %s\n",
		booking.ID, booking.Nights(), formatMoney(booking.TotalCost))
	return err
}

func (m *Menu) checkOut(ctx context.Context) error {
	number, err := m.askInt("Room number: ")
	if err != nil {
		return err
	}
	if err := m.store.ValidateRoomNumber(number); err != nil {
		return err
	}

	out, err := m.store.CheckOut(ctx, number)
	if err != nil && !errors.Is(err, services.ErrPersist) {
		return err
	}
	fmt.Fprintf(m.out, "Guest %s checked out of room %d. Total cost: %s\n",
		out.GuestName, out.RoomNumber, formatMoney(out.TotalCost))
	return err
}

func (m *Menu) setStatus(ctx context.Context) error {
	number, err := m.askInt("Room number: ")
	if err != nil {
		return err
	}
	raw, err := m.askLine("New status (Vacant, UnderMaintenance): ")
	if err != nil {
		return err
	}
	status, err := models.ParseRoomStatus(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid status %q.\n", raw)
		return errAbandon
	}

	room, err := m.store.SetRoomStatus(ctx, number, status)
	if err != nil && !errors.Is(err, services.ErrPersist) {
		return err
	}
	fmt.Fprintf(m.out, "Room %d is now %s.\n", room.Number, room.Status)
	return err
}

func categoryNames() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
