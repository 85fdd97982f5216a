// Package localtime fixes the reference timezone for timestamps and
// deadline parsing. Everything user-visible is displayed in Taipei time
// regardless of where the process runs.
package localtime

import (
	"fmt"
	"time"
)

// TimestampLayout is the display format used for row timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// NaiveLayout is the offset-less timestamp format written into group rows.
// ParseDeadline accepts it back, interpreted in the reference timezone.
const NaiveLayout = "2006-01-02T15:04:05"

// Location is the fixed reference timezone.
var Location = mustLoad("Asia/Taipei")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load timezone %s: %v", name, err))
	}
	return loc
}

// Now returns the current time in the reference timezone.
func Now() time.Time {
	return time.Now().In(Location)
}

// naive layouts found in rows written before deadlines carried an offset.
var naiveLayouts = []string{
	NaiveLayout,
	"2006-01-02T15:04",
}

// ParseDeadline parses a deadline string. Offset-aware values (RFC 3339)
// are preferred; legacy values without an offset are interpreted in the
// reference timezone.
func ParseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable deadline %q", s)
}
