package helpers

import (
	"errors"
	"time"
)

// DueDateLayout is the wire format for due dates: dd-MM-yyyy HH:mm:ss,
// zero-padded, 24h clock, interpreted as UTC.
const DueDateLayout = "02-01-2006 15:04:05"

// createdDateLayout renders account creation timestamps on read paths.
const createdDateLayout = "2006-01-02 15:04:05"

// ErrInvalidDueDate rejects any due date string that does not exactly match
// DueDateLayout.
var ErrInvalidDueDate = errors.New("invalid date format, use 'dd-MM-yyyy HH:mm:ss'")

// displayZone is the fixed regional offset (UTC+5:30) used to re-render
// timestamps on the user read paths. Display only; stored values stay UTC.
var displayZone = time.FixedZone("IST", 5*3600+30*60)

// ParseDueDate parses a due date in DueDateLayout as UTC. The input must
// reproduce itself when re-rendered, so unpadded or out-of-range components
// ("31-02-2024 99:00:00") are rejected rather than normalized.
func ParseDueDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DueDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	if t.Format(DueDateLayout) != raw {
		return time.Time{}, ErrInvalidDueDate
	}
	return t, nil
}

// FormatDueDate renders a due date in DueDateLayout, in UTC.
func FormatDueDate(t time.Time) string {
	return t.UTC().Format(DueDateLayout)
}

// FormatDueDateDisplay renders a due date in DueDateLayout shifted into the
// fixed display zone.
func FormatDueDateDisplay(t time.Time) string {
	return t.In(displayZone).Format(DueDateLayout)
}

// FormatCreatedDateDisplay renders a creation timestamp shifted into the
// fixed display zone.
func FormatCreatedDateDisplay(t time.Time) string {
	return t.In(displayZone).Format(createdDateLayout)
}
