package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseUserTime accepts RFC3339 or a bare YYYY-MM-DD date. A bare date used
// as an upper bound covers the whole day.
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, timeStr); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}
	if isEndTime {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return t, nil
}

// ParseTimeRange parses optional start and end bounds. Empty strings leave the
// bound zero.
func ParseTimeRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error

	if start != "" {
		if from, err = ParseUserTime(start, false); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if end != "" {
		if to, err = ParseUserTime(end, true); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_time must be before end_time")
	}
	return from, to, nil
}
