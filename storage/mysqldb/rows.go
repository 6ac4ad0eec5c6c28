package mysqldb

import (
	"time"

	"gorm.io/datatypes"

	"hotel-desk/models"
	"hotel-desk/storage"
)

// RoomRow keeps a surrogate key because room numbers are not guaranteed
// unique; ID order is insertion order.
type RoomRow struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	RoomNumber    int     `gorm:"column:room_number;index"`
	Category      string  `gorm:"column:category;type:varchar(32)"`
	Status        string  `gorm:"column:status;type:varchar(32)"`
	PricePerNight float64 `gorm:"column:price_per_night"`
}

func (RoomRow) TableName() string { return "rooms" }

type GuestRow struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;type:varchar(255);index"`
	ContactInfo string `gorm:"column:contact_info;type:text"`
}

func (GuestRow) TableName() string { return "guests" }

type BookingRow struct {
	BookingID    int            `gorm:"column:booking_id;primaryKey;autoIncrement:false"`
	RoomNumber   int            `gorm:"column:room_number;index"`
	GuestName    string         `gorm:"column:guest_name;type:varchar(255);index"`
	CheckInDate  datatypes.Date `gorm:"column:check_in_date"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date"`
	TotalCost    float64        `gorm:"column:total_cost"`
}

func (BookingRow) TableName() string { return "bookings" }

func toRows(snap storage.Snapshot) ([]RoomRow, []GuestRow, []BookingRow) {
	rooms := make([]RoomRow, 0, len(snap.Rooms))
	for _, r := range snap.Rooms {
		rooms = append(rooms, RoomRow{
			RoomNumber:    r.Number,
			Category:      string(r.Category),
			Status:        string(r.Status),
			PricePerNight: r.PricePerNight,
		})
	}

	guests := make([]GuestRow, 0, len(snap.Guests))
	for _, g := range snap.Guests {
		guests = append(guests, GuestRow{Name: g.Name, ContactInfo: g.ContactInfo})
	}

	bookings := make([]BookingRow, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		bookings = append(bookings, BookingRow{
			BookingID:    b.ID,
			RoomNumber:   b.RoomNumber,
			GuestName:    b.GuestName,
			CheckInDate:  datatypes.Date(models.DateOnly(b.CheckIn)),
			CheckOutDate: datatypes.Date(models.DateOnly(b.CheckOut)),
			TotalCost:    b.TotalCost,
		})
	}
	return rooms, guests, bookings
}

func fromRows(rooms []RoomRow, guests []GuestRow, bookings []BookingRow) (storage.Snapshot, error) {
	var snap storage.Snapshot
	for _, row := range rooms {
		category, err := models.ParseCategory(row.Category)
		if err != nil {
			return storage.Snapshot{}, err
		}
		status, err := models.ParseRoomStatus(row.Status)
		if err != nil {
			return storage.Snapshot{}, err
		}
		snap.Rooms = append(snap.Rooms, models.Room{
			Number:        row.RoomNumber,
			Category:      category,
			Status:        status,
			PricePerNight: row.PricePerNight,
		})
	}
	for _, row := range guests {
		snap.Guests = append(snap.Guests, models.Guest{Name: row.Name, ContactInfo: row.ContactInfo})
	}
	for _, row := range bookings {
		snap.Bookings = append(snap.Bookings, models.Booking{
			ID:         row.BookingID,
			RoomNumber: row.RoomNumber,
			GuestName:  row.GuestName,
			CheckIn:    models.DateOnly(time.Time(row.CheckInDate)),
			CheckOut:   models.DateOnly(time.Time(row.CheckOutDate)),
			TotalCost:  row.TotalCost,
		})
	}
	return snap, nil
}
