// Package timex holds time helpers shared by configuration loaders.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration so it can be read from JSON either as a
// string understood by time.ParseDuration ("5s", "1m30s") or as an integer
// number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("invalid duration")
	}
}

// ParseDate parses a YYYY-MM-DD date in loc. On failure it returns fallback
// and false.
func ParseDate(s string, loc *time.Location, fallback time.Time) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return fallback, false
	}
	return t, true
}

// DateLayout is the spreadsheet date format.
const DateLayout = "2006-01-02"

// DaysBetween returns the number of whole days from a to b, floored, so that
// a span of 23 hours is 0 days and a span of -1 hour is -1 day. Both sides
// are compared by their wall clock, so a DST shift in between does not move
// the count.
func DaysBetween(a, b time.Time) int {
	d := wallClock(b).Sub(wallClock(a))
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
