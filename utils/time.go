// Package utils provides time helpers shared by the sighting pipeline and report.
package utils //nolint:revive // utils is a common and acceptable package name

import (
	"fmt"
	"time"
)

// ClockFormat is the wall-clock layout used in reports, HH:MM:SS.
const ClockFormat = "15:04:05"

// GetClockString formats t as local wall-clock time in its own location.
func GetClockString(t time.Time) string {
	return t.Format(ClockFormat)
}

// StartOfDay returns midnight of t's civil date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseClock parses an HH:MM:SS string as a wall-clock time on day's civil date.
func ParseClock(day time.Time, clock string) (time.Time, error) {
	c, err := time.Parse(ClockFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), c.Second(), 0, day.Location()), nil
}

// FormatSignedDuration renders d rounded to seconds with an explicit sign.
func FormatSignedDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		return "-" + (-d).String()
	}
	return "+" + d.String()
}
