package core

import (
	"fmt"
	"time"
)

// Source data carries dates in a handful of formats; everything is
// normalized to a YYYYMMDD integer before storage. No chunk may persist
// with a non-canonical date.
var sourceDateLayouts = []string{
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
}

// DateInt converts a calendar date to its canonical YYYYMMDD integer.
func DateInt(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

// DateFromInt converts a canonical YYYYMMDD integer back to a calendar date.
func DateFromInt(d int64) (time.Time, error) {
	year := int(d / 10000)
	month := int(d/100) % 100
	day := int(d % 100)
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidDate, d)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject normalized overflow such as 20230231.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidDate, d)
	}
	return t, nil
}

// ParseSourceDate parses a source-format date string (DD.MM.YYYY,
// DD/MM/YYYY or ISO).
func ParseSourceDate(s string) (time.Time, error) {
	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ConvertDate normalizes a source-format date string to its canonical
// YYYYMMDD integer, e.g. "27.11.2025" -> 20251127.
func ConvertDate(s string) (int64, error) {
	t, err := ParseSourceDate(s)
	if err != nil {
		return 0, err
	}
	return DateInt(t), nil
}
