package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"hotel-desk/storage"
	"hotel-desk/storage/mysqldb"
	"hotel-desk/storage/sqlite"
	"hotel-desk/storage/textfile"
)

// OpenRepository opens the backend named by cfg.Storage.Backend.
func OpenRepository(cfg *Config) (storage.Repository, error) {
	switch cfg.Storage.Backend {
	case BackendText:
		store, err := textfile.Open(cfg.Storage.DataDir,
			textfile.WithFileNames(cfg.Storage.RoomsFile, cfg.Storage.GuestsFile, cfg.Storage.BookingsFile))
		if err != nil {
			return nil, err
		}
		rooms, _, _ := store.Paths()
		log.Printf("✅ Using text files in %s", filepath.Dir(rooms))
		return store, nil

	case BackendSQLite:
		path := cfg.Storage.SQLitePath
		if path == "" {
			path = filepath.Join(cfg.Storage.DataDir, "hotel.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Using sqlite database %s", path)
		return store, nil

	case BackendMySQL:
		url := cfg.MySQL.URL
		if url == "" {
			url = cfg.MySQL.DatabaseURL
		}
		dsn, err := mysqldb.ResolveDSN(mysqldb.DSNConfig{
			URL:      url,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			Name:     cfg.MySQL.Name,
		})
		if err != nil {
			return nil, err
		}
		return mysqldb.Open(dsn, cfg.Debug())
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
