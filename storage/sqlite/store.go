// Package sqlite provides a SQLite-backed hotel snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/storage"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	seq             INTEGER PRIMARY KEY,
	room_number     INTEGER NOT NULL,
	category        TEXT    NOT NULL,
	status          TEXT    NOT NULL,
	price_per_night REAL    NOT NULL
);
CREATE TABLE IF NOT EXISTS guests (
	seq          INTEGER PRIMARY KEY,
	name         TEXT NOT NULL,
	contact_info TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS bookings (
	booking_id     INTEGER PRIMARY KEY,
	room_number    INTEGER NOT NULL,
	guest_name     TEXT    NOT NULL,
	check_in_date  TEXT    NOT NULL,
	check_out_date TEXT    NOT NULL,
	total_cost     REAL    NOT NULL
);`

// Store persists the snapshot in three tables. Row order is kept through
// the seq column since room numbers and guest names may repeat.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the database file and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot
	if err := ctx.Err(); err != nil {
		return snap, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT room_number, category, status, price_per_night FROM rooms ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("query rooms: %w", err)
	}
	for rows.Next() {
		var (
			r                models.Room
			category, status string
		)
		if err := rows.Scan(&r.Number, &category, &status, &r.PricePerNight); err != nil {
			rows.Close()
			return storage.Snapshot{}, fmt.Errorf("scan room: %w", err)
		}
		if r.Category, err = models.ParseCategory(category); err != nil {
			rows.Close()
			return storage.Snapshot{}, err
		}
		if r.Status, err = models.ParseRoomStatus(status); err != nil {
			rows.Close()
			return storage.Snapshot{}, err
		}
		snap.Rooms = append(snap.Rooms, r)
	}
	if err := closeRows(rows); err != nil {
		return storage.Snapshot{}, fmt.Errorf("read rooms: %w", err)
	}

	rows, err = s.sqlDB.QueryContext(ctx, `SELECT name, contact_info FROM guests ORDER BY seq`)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("query guests: %w", err)
	}
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.Name, &g.ContactInfo); err != nil {
			rows.Close()
			return storage.Snapshot{}, fmt.Errorf("scan guest: %w", err)
		}
		snap.Guests = append(snap.Guests, g)
	}
	if err := closeRows(rows); err != nil {
		return storage.Snapshot{}, fmt.Errorf("read guests: %w", err)
	}

	rows, err = s.sqlDB.QueryContext(ctx, `
SELECT booking_id, room_number, guest_name, check_in_date, check_out_date, total_cost
FROM bookings ORDER BY booking_id`)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("query bookings: %w", err)
	}
	for rows.Next() {
		var (
			b            models.Booking
			ciRaw, coRaw string
		)
		if err := rows.Scan(&b.ID, &b.RoomNumber, &b.GuestName, &ciRaw, &coRaw, &b.TotalCost); err != nil {
			rows.Close()
			return storage.Snapshot{}, fmt.Errorf("scan booking: %w", err)
		}
		if b.CheckIn, err = time.Parse(models.DateLayout, ciRaw); err != nil {
			rows.Close()
			return storage.Snapshot{}, fmt.Errorf("booking %d check-in: %w", b.ID, err)
		}
		if b.CheckOut, err = time.Parse(models.DateLayout, coRaw); err != nil {
			rows.Close()
			return storage.Snapshot{}, fmt.Errorf("booking %d check-out: %w", b.ID, err)
		}
		snap.Bookings = append(snap.Bookings, b)
	}
	if err := closeRows(rows); err != nil {
		return storage.Snapshot{}, fmt.Errorf("read bookings: %w", err)
	}

	return snap, nil
}

// Save replaces the content of all three tables in a single transaction.
func (s *Store) Save(ctx context.Context, snap storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"rooms", "guests", "bookings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, r := range snap.Rooms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rooms (seq, room_number, category, status, price_per_night) VALUES (?, ?, ?, ?, ?)`,
			i+1, r.Number, string(r.Category), string(r.Status), r.PricePerNight,
		); err != nil {
			return fmt.Errorf("insert room %d: %w", r.Number, err)
		}
	}
	for i, g := range snap.Guests {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO guests (seq, name, contact_info) VALUES (?, ?, ?)`,
			i+1, g.Name, g.ContactInfo,
		); err != nil {
			return fmt.Errorf("insert guest %q: %w", g.Name, err)
		}
	}
	for _, b := range snap.Bookings {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO bookings (booking_id, room_number, guest_name, check_in_date, check_out_date, total_cost)
VALUES (?, ?, ?, ?, ?, ?)`,
			b.ID, b.RoomNumber, b.GuestName,
			b.CheckIn.Format(models.DateLayout), b.CheckOut.Format(models.DateLayout), b.TotalCost,
		); err != nil {
			return fmt.Errorf("insert booking %d: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}

var _ storage.Repository = (*Store)(nil)
