// Package config gathers hotel-desk settings from defaults, an optional
// YAML file, an optional .env file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config flag is given and it exists in the
// working directory.
const DefaultFile = "hotel.yaml"

const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	MySQL   MySQLConfig   `yaml:"mysql"`

	// UniqueRooms refuses a second room with an existing number.
	UniqueRooms bool   `yaml:"unique_rooms" env:"HOTEL_UNIQUE_ROOMS"`
	LogLevel    string `yaml:"log_level" env:"HOTEL_LOG_LEVEL"`
}

type StorageConfig struct {
	Backend      string `yaml:"backend" env:"HOTEL_STORAGE"`
	DataDir      string `yaml:"data_dir" env:"HOTEL_DATA_DIR"`
	RoomsFile    string `yaml:"rooms_file" env:"HOTEL_ROOMS_FILE"`
	GuestsFile   string `yaml:"guests_file" env:"HOTEL_GUESTS_FILE"`
	BookingsFile string `yaml:"bookings_file" env:"HOTEL_BOOKINGS_FILE"`
	// SQLitePath defaults to hotel.db inside DataDir.
	SQLitePath string `yaml:"sqlite_path" env:"HOTEL_SQLITE_PATH"`
}

type ServerConfig struct {
	Port        string `yaml:"port" env:"PORT"`
	CORSOrigins string `yaml:"cors_origins" env:"CORS_ORIGINS"`
	// APITokenHash is a bcrypt hash of the operator token. Empty disables
	// the token check.
	APITokenHash    string        `yaml:"api_token_hash" env:"HOTEL_API_TOKEN_HASH"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HOTEL_SHUTDOWN_TIMEOUT"`
}

type MySQLConfig struct {
	URL         string `yaml:"url" env:"MYSQL_URL"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`
	User        string `yaml:"user" env:"DB_USER"`
	Password    string `yaml:"password" env:"DB_PASS"`
	Host        string `yaml:"host" env:"DB_HOST"`
	Port        string `yaml:"port" env:"DB_PORT"`
	Name        string `yaml:"name" env:"DB_NAME"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:      BackendText,
			DataDir:      ".",
			RoomsFile:    "rooms.txt",
			GuestsFile:   "guests.txt",
			BookingsFile: "bookings.txt",
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 15 * time.Second,
		},
		MySQL: MySQLConfig{
			User: "root",
			Host: "127.0.0.1",
			Port: "3306",
			Name: "hotel_db",
		},
		LogLevel: "info",
	}
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with every variable that is set. Unset variables
// leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env from the working directory when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("⚠️  couldn't load .env: %v", err)
		}
	}
}

// ResolvePath picks the config file: the flag value, else DefaultFile when
// it exists, else none.
func ResolvePath(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load builds the configuration from path (may be empty) and the
// environment. The result is not validated; callers apply flag overrides
// first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fromFile, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fromFile
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendText:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("storage.data_dir is required")
		}
		if c.Storage.RoomsFile == "" || c.Storage.GuestsFile == "" || c.Storage.BookingsFile == "" {
			return fmt.Errorf("storage file names must not be empty")
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" && strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("storage.sqlite_path or storage.data_dir is required")
		}
	case BackendMySQL:
		if c.MySQL.URL == "" && c.MySQL.DatabaseURL == "" && c.MySQL.Name == "" {
			return fmt.Errorf("mysql.url or mysql.name is required")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want text, sqlite or mysql)", c.Storage.Backend)
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("server.port must be a number between 1 and 65535, got %q", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Server.APITokenHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Server.APITokenHash)); err != nil {
			return fmt.Errorf("server.api_token_hash is not a bcrypt hash: %w", err)
		}
	}
	return nil
}

// Debug reports whether verbose logging was asked for.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}
