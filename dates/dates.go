// Package dates provides date-manipulation helpers shared by Folio
// services: calendar-boundary math and conversions between time.Time and
// the epoch-millisecond integers stored on content records.
package dates

import (
	"time"

	"github.com/jinzhu/now"
)

// ISOFormat is the timestamp layout used in API payloads and log entries.
const ISOFormat = "2006-01-02T15:04:05.000Z07:00"

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ToMillis converts a time to epoch milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// StartOfDay returns midnight at the start of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// StartOfWeek returns the start of t's week. Weeks start on Monday.
func StartOfWeek(t time.Time) time.Time {
	n := now.New(t)
	n.WeekStartDay = time.Monday
	return n.BeginningOfWeek()
}

// StartOfMonth returns the start of t's month.
func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// EndOfMonth returns the last representable instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return now.With(t).EndOfMonth()
}

// AddDays returns t shifted by n calendar days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a. Partial days are ignored: two instants on
// the same calendar day are zero days apart.
func DaysBetween(a, b time.Time) int {
	start := StartOfDay(a)
	end := StartOfDay(b.In(a.Location()))
	return int(end.Sub(start).Hours() / 24)
}

// FormatISO renders t in the ISO-8601 layout used across the platform.
func FormatISO(t time.Time) string {
	return t.Format(ISOFormat)
}

// ParseISO parses a timestamp in the platform's ISO-8601 layout, falling
// back to RFC 3339 for values produced by other tooling.
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(ISOFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
