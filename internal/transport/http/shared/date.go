package shared

import (
	"fmt"
	"time"
)

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseMonth turns "YYYY-MM" into the month's half-open [start, end) range.
func ParseMonth(value string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q", value)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// Today returns the current date truncated to midnight UTC, the granularity
// attendance and expense rows are keyed on.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
