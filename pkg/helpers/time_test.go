package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestParseDueDateRoundTrip(t *testing.T) {
	inputs := []string{
		"25-12-2024 15:30:00",
		"01-01-2000 00:00:00",
		"29-02-2024 23:59:59",
		"31-12-1999 12:00:01",
	}
	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			got, err := ParseDueDate(raw)
			if err != nil {
				t.Fatalf("ParseDueDate(%q): %v", raw, err)
			}
			if got.Location() != time.UTC {
				t.Errorf("location: got %v, want UTC", got.Location())
			}
			if back := FormatDueDate(got); back != raw {
				t.Errorf("round trip: got %q, want %q", back, raw)
			}
		})
	}
}

func TestParseDueDateRejectsBadInput(t *testing.T) {
	inputs := []string{
		"",
		"2024-12-25 15:30:00",     // ISO order
		"25-12-2024",              // date only
		"25-12-2024 15:30",        // missing seconds
		"31-02-2024 99:00:00",     // impossible day and hour
		"30-02-2024 10:00:00",     // impossible day
		"5-1-2024 15:30:00",       // unpadded
		"25-12-2024 15:30:00 UTC", // trailing junk
	}
	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			if _, err := ParseDueDate(raw); !errors.Is(err, ErrInvalidDueDate) {
				t.Errorf("ParseDueDate(%q): got %v, want ErrInvalidDueDate", raw, err)
			}
		})
	}
}

func TestParseDueDateIsUTC(t *testing.T) {
	got, err := ParseDueDate("25-12-2024 15:30:00")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 12, 25, 15, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFormatDueDateDisplayShiftsZone(t *testing.T) {
	due := time.Date(2024, 12, 25, 15, 30, 0, 0, time.UTC)
	// UTC+5:30
	if got, want := FormatDueDateDisplay(due), "25-12-2024 21:00:00"; got != want {
		t.Errorf("display: got %q, want %q", got, want)
	}
	// Stored rendering stays UTC.
	if got, want := FormatDueDate(due), "25-12-2024 15:30:00"; got != want {
		t.Errorf("utc: got %q, want %q", got, want)
	}
}
