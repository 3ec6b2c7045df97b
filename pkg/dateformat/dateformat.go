package dateformat

import (
	"errors"
	"fmt"
	"time"
)

// Layouts shared with the persisted metadata and the mailing list. They are a
// compatibility contract and must change together.
const (
	LayoutStorage = "2006-01-02"
	LayoutDisplay = "01/02/2006"
	LayoutExport  = "01/02"
)

// ErrEmpty is returned when there is nothing to parse.
var ErrEmpty = errors.New("dateformat: empty input")

// ParseError reports text that does not match a layout.
type ParseError struct {
	Layout string
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dateformat: %q does not match layout %q", e.Text, e.Layout)
	}
	return fmt.Sprintf("dateformat: %q does not match layout %q: %v", e.Text, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Format renders the date with one of the layout constants.
func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// ParseStrict parses text using layout. Month and day must be two digits,
// the year four digits when the layout carries one, and the result must exist
// in the calendar (13/40/2000 and 02/30/2001 are rejected).
func ParseStrict(layout, text string) (Date, error) {
	if text == "" {
		return Date{}, ErrEmpty
	}
	parsed, err := time.Parse(layout, text)
	if err != nil {
		return Date{}, &ParseError{Layout: layout, Text: text, Err: err}
	}
	// time.Parse tolerates a few shapes the layout does not spell out, the
	// canonical rendering must reproduce the input byte for byte.
	if parsed.Format(layout) != text {
		return Date{}, &ParseError{Layout: layout, Text: text}
	}
	return Date{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

// Convert parses text with from and renders it with to. The boolean is false
// when text is empty or does not match from.
func Convert(text, from, to string) (string, bool) {
	date, err := ParseStrict(from, text)
	if err != nil {
		return "", false
	}
	return date.Format(to), true
}

// ToDisplay converts a Storage encoded date to the Display encoding.
func ToDisplay(storage string) (string, bool) {
	return Convert(storage, LayoutStorage, LayoutDisplay)
}

// ToStorage converts a Display encoded date to the Storage encoding.
func ToStorage(display string) (string, bool) {
	return Convert(display, LayoutDisplay, LayoutStorage)
}

// ToExport converts a Storage encoded date to the yearless Export encoding.
func ToExport(storage string) (string, bool) {
	return Convert(storage, LayoutStorage, LayoutExport)
}
