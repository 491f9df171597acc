// Package biztime centralizes clock access and timestamp formatting.
// All storage and transport use UTC. Timestamps are persisted as RFC3339
// strings at second precision so that lexicographic order of the stored
// form equals chronological order.
package biztime

import (
	"fmt"
	"time"
)

// TimestampLayout is the storage format for all persisted timestamps.
const TimestampLayout = time.RFC3339

// NowUTC returns the current time in UTC truncated to second precision,
// matching the precision of the stored form.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTimestamp renders a time in the storage format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored timestamp back into a UTC time.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
