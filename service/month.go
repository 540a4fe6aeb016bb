package service

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey returns the "YYYY-MM" bucket for a timestamp, truncated in
// UTC. Two timestamps in the same calendar month produce the same key
// regardless of day or time of day, matching the SQL month bucketing.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// MonthStart parses a "YYYY-MM" key into the first instant of that
// month in UTC.
func MonthStart(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// NextMonthStart returns the first instant of the month following the
// given "YYYY-MM" key in UTC.
func NextMonthStart(key string) (time.Time, error) {
	start, err := MonthStart(key)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 1, 0), nil
}
