// Package mysqldb stores the hotel snapshot in MySQL through gorm.
package mysqldb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-desk/storage"
)

const (
	batchSize       = 200
	errDuplicateKey = 1062
)

type Store struct {
	DB *gorm.DB
}

// Open connects, migrates the three tables and returns the store.
func Open(dsn string, verbose bool) (*Store, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      level,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&RoomRow{}, &GuestRow{}, &BookingRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("✅ MySQL connection established and tables migrated")
	return &Store{DB: db}, nil
}

func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	db := s.DB.WithContext(ctx)

	var rooms []RoomRow
	if err := db.Order("id").Find(&rooms).Error; err != nil {
		return storage.Snapshot{}, fmt.Errorf("load rooms: %w", err)
	}
	var guests []GuestRow
	if err := db.Order("id").Find(&guests).Error; err != nil {
		return storage.Snapshot{}, fmt.Errorf("load guests: %w", err)
	}
	var bookings []BookingRow
	if err := db.Order("booking_id").Find(&bookings).Error; err != nil {
		return storage.Snapshot{}, fmt.Errorf("load bookings: %w", err)
	}
	return fromRows(rooms, guests, bookings)
}

// Save deletes every row and inserts the snapshot inside one transaction.
func (s *Store) Save(ctx context.Context, snap storage.Snapshot) error {
	rooms, guests, bookings := toRows(snap)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&RoomRow{}).Error; err != nil {
			return fmt.Errorf("clear rooms: %w", err)
		}
		if err := wipe.Delete(&GuestRow{}).Error; err != nil {
			return fmt.Errorf("clear guests: %w", err)
		}
		if err := wipe.Delete(&BookingRow{}).Error; err != nil {
			return fmt.Errorf("clear bookings: %w", err)
		}

		if len(rooms) > 0 {
			if err := tx.CreateInBatches(&rooms, batchSize).Error; err != nil {
				return fmt.Errorf("insert rooms: %w", err)
			}
		}
		if len(guests) > 0 {
			if err := tx.CreateInBatches(&guests, batchSize).Error; err != nil {
				return fmt.Errorf("insert guests: %w", err)
			}
		}
		if len(bookings) > 0 {
			if err := tx.CreateInBatches(&bookings, batchSize).Error; err != nil {
				return fmt.Errorf("insert bookings: %w", err)
			}
		}
		return nil
	})
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", storage.ErrConflict, err)
	}
	return err
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateKey
}

var _ storage.Repository = (*Store)(nil)
