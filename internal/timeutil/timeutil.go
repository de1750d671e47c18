// Package timeutil parses and formats the instants daysleft reads from users
package timeutil

import (
	"errors"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// Layouts accepted before falling back to natural language parsing.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Parse parses value in one of the absolute layouts only. Relative phrases
// are rejected since their meaning depends on when they are read.
func Parse(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errEmptyDate
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, errNotAbsolute.Fmt(value)
}

// FromStr parses value as an instant in loc. Absolute layouts are tried
// first; anything else ("next friday at noon", "in 3 months") goes through
// the date parser relative to now.
func FromStr(value string, now time.Time, loc *time.Location) (time.Time, error) {
	t, err := Parse(value, loc)
	if err == nil || errors.Is(err, errEmptyDate) {
		return t, err
	}

	value = strings.TrimSpace(value)

	cfg := &dps.Configuration{
		CurrentTime:     now.In(loc),
		DefaultTimezone: loc,
	}

	dt, err := dps.Parse(cfg, value)
	if err != nil {
		return time.Time{}, errParsingDate.Fmt(value).Wrap(err)
	}

	return dt.Time.In(loc), nil
}

// Format renders t for display using a 12 or 24 hour clock.
func Format(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("Jan 02, 2006 15:04:05")
	}

	return t.Format("Jan 02, 2006 03:04:05 PM")
}

// LoadLocation resolves a zone name; an empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errUnknownTimezone.Fmt(name).Wrap(err)
	}

	return loc, nil
}
