package dates

import (
	"testing"
	"time"
)

func TestMillis_RoundTrip(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 45, 123_000_000, time.UTC)

	ms := ToMillis(at)
	back := FromMillis(ms)
	if !back.Equal(at) {
		t.Errorf("Expected %v, got %v", at, back)
	}
}

func TestNowMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	got := NowMillis()
	after := time.Now().UnixMilli()

	if got < before || got > after {
		t.Errorf("Expected NowMillis within [%d, %d], got %d", before, after, got)
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2024, 6, 1, 15, 42, 7, 0, time.UTC)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Day() != 1 {
		t.Errorf("Unexpected start of day %v", start)
	}

	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Day() != 1 {
		t.Errorf("Unexpected end of day %v", end)
	}
	if !end.After(at) {
		t.Error("Expected end of day after the input instant")
	}
}

func TestStartOfWeek_Monday(t *testing.T) {
	// 2024-06-01 is a Saturday; the week began Monday 2024-05-27.
	at := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	start := StartOfWeek(at)
	if start.Weekday() != time.Monday {
		t.Errorf("Expected Monday, got %v", start.Weekday())
	}
	if start.Day() != 27 || start.Month() != time.May {
		t.Errorf("Unexpected week start %v", start)
	}
}

func TestStartAndEndOfMonth(t *testing.T) {
	at := time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)

	if got := StartOfMonth(at); got.Day() != 1 || got.Month() != time.February {
		t.Errorf("Unexpected start of month %v", got)
	}
	// 2024 is a leap year.
	if got := EndOfMonth(at); got.Day() != 29 {
		t.Errorf("Expected Feb 29, got %v", got)
	}
}

func TestAddDays(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	if got := AddDays(at, 1); got.Month() != time.February || got.Day() != 1 {
		t.Errorf("Unexpected result %v", got)
	}
	if got := AddDays(at, -31); got.Month() != time.December || got.Year() != 2023 {
		t.Errorf("Unexpected result %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 4, 1, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 3 {
		t.Errorf("Expected 3 days, got %d", got)
	}
	if got := DaysBetween(b, a); got != -3 {
		t.Errorf("Expected -3 days, got %d", got)
	}
	if got := DaysBetween(a, a.Add(30*time.Minute)); got != 0 {
		t.Errorf("Expected same-day instants 0 days apart, got %d", got)
	}
}

func TestFormatAndParseISO(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 45, 123_000_000, time.UTC)

	s := FormatISO(at)
	if s != "2024-06-01T12:30:45.123Z" {
		t.Errorf("Unexpected ISO rendering %q", s)
	}

	back, err := ParseISO(s)
	if err != nil {
		t.Fatalf("ParseISO failed: %v", err)
	}
	if !back.Equal(at) {
		t.Errorf("Expected %v, got %v", at, back)
	}
}

func TestParseISO_RFC3339Fallback(t *testing.T) {
	got, err := ParseISO("2024-06-01T12:30:45Z")
	if err != nil {
		t.Fatalf("ParseISO failed: %v", err)
	}
	if got.Hour() != 12 || got.Second() != 45 {
		t.Errorf("Unexpected parse result %v", got)
	}
}
