package mysqldb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// DSNConfig holds the connection settings gathered from configuration.
// URL wins over the individual fields when set.
type DSNConfig struct {
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// ResolveDSN builds a go-sql-driver DSN. URL may be a mysql:// URL or a
// ready DSN. parseTime is always switched on since bookings carry dates.
func ResolveDSN(c DSNConfig) (string, error) {
	raw := strings.TrimSpace(c.URL)

	var dsn string
	switch {
	case strings.HasPrefix(raw, "mysql://"):
		converted, err := dsnFromURL(raw)
		if err != nil {
			return "", err
		}
		dsn = converted
	case raw != "":
		dsn = raw
	default:
		if strings.TrimSpace(c.Name) == "" {
			return "", fmt.Errorf("mysql database name is required")
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			orDefault(c.User, "root"), c.Password,
			orDefault(c.Host, "127.0.0.1"), orDefault(c.Port, "3306"), c.Name,
		)
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("mysql dsn missing database name")
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func dsnFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
