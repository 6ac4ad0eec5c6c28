// Package textfile persists the hotel store as three comma-separated text
// files, one record per line and no header row.
//
// Fields holding a comma, a double quote or a line break are quoted the CSV
// way. Every other record is written exactly as a plain comma join, so files
// produced before quoting existed still load unchanged.
package textfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"hotel-desk/storage"
)

const (
	DefaultRoomsFile    = "rooms.txt"
	DefaultGuestsFile   = "guests.txt"
	DefaultBookingsFile = "bookings.txt"
)

// ErrMalformedRecord is wrapped by every load failure caused by file content.
var ErrMalformedRecord = errors.New("malformed_record")

// Store keeps one file per collection inside a data directory.
type Store struct {
	roomsPath    string
	guestsPath   string
	bookingsPath string
}

type Option func(*Store)

// WithFileNames overrides the three file names. Relative names resolve
// against the data directory; empty names keep the default.
func WithFileNames(rooms, guests, bookings string) Option {
	return func(s *Store) {
		dir := filepath.Dir(s.roomsPath)
		if rooms != "" {
			s.roomsPath = resolve(dir, rooms)
		}
		if guests != "" {
			s.guestsPath = resolve(dir, guests)
		}
		if bookings != "" {
			s.bookingsPath = resolve(dir, bookings)
		}
	}
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Open prepares a store rooted at dir, creating the directory if needed.
// Missing files are not an error: they load as empty collections.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		roomsPath:    filepath.Join(dir, DefaultRoomsFile),
		guestsPath:   filepath.Join(dir, DefaultGuestsFile),
		bookingsPath: filepath.Join(dir, DefaultBookingsFile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Paths returns the rooms, guests and bookings file paths.
func (s *Store) Paths() (rooms, guests, bookings string) {
	return s.roomsPath, s.guestsPath, s.bookingsPath
}

func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot
	if err := ctx.Err(); err != nil {
		return snap, err
	}

	err := readRecords(s.roomsPath, func(fields []string) error {
		r, err := decodeRoom(fields)
		if err == nil {
			snap.Rooms = append(snap.Rooms, r)
		}
		return err
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	err = readRecords(s.guestsPath, func(fields []string) error {
		g, err := decodeGuest(fields)
		if err == nil {
			snap.Guests = append(snap.Guests, g)
		}
		return err
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	err = readRecords(s.bookingsPath, func(fields []string) error {
		b, err := decodeBooking(fields)
		if err == nil {
			snap.Bookings = append(snap.Bookings, b)
		}
		return err
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	log.Printf("📂 Loaded %d rooms, %d guests, %d bookings from %s",
		len(snap.Rooms), len(snap.Guests), len(snap.Bookings), filepath.Dir(s.roomsPath))
	return snap, nil
}

// Save truncates and rewrites all three files. A failure part way through
// leaves the files written so far in place; nothing is rolled back.
func (s *Store) Save(ctx context.Context, snap storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rooms := make([][]string, 0, len(snap.Rooms))
	for _, r := range snap.Rooms {
		rooms = append(rooms, encodeRoom(r))
	}
	if err := writeRecords(s.roomsPath, rooms); err != nil {
		return err
	}

	guests := make([][]string, 0, len(snap.Guests))
	for _, g := range snap.Guests {
		guests = append(guests, encodeGuest(g))
	}
	if err := writeRecords(s.guestsPath, guests); err != nil {
		return err
	}

	bookings := make([][]string, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		bookings = append(bookings, encodeBooking(b))
	}
	return writeRecords(s.bookingsPath, bookings)
}

func (s *Store) Close() error { return nil }

func readRecords(path string, decode func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedRecord, path, err)
		}
		if err := decode(fields); err != nil {
			line, _ := r.FieldPos(0)
			return fmt.Errorf("%w: %s line %d: %v", ErrMalformedRecord, path, line, err)
		}
	}
}

func writeRecords(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

var _ storage.Repository = (*Store)(nil)
