package utils

import (
	"fmt"
	"strings"
	"time"

	"hotel-desk/models"
)

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
