// Package daterange provides the instant, duration and range primitives shared
// by the calendar builder and the progress statistics
package daterange

import "time"

// Range is a linear span from Start to End. A valid range always ends strictly
// after it starts.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New creates a validated range. The end instant is expressed in the start's
// location so that both boundaries are read in a single zone.
func New(start, end time.Time) (Range, error) {
	r := Range{
		Start: start,
		End:   end.In(start.Location()),
	}

	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate reports ErrInvalidRange unless the range ends after it starts.
func (r Range) Validate() error {
	if !r.End.After(r.Start) {
		return ErrInvalidRange.Fmt(
			r.End.Format(time.RFC3339),
			r.Start.Format(time.RFC3339),
		)
	}

	return nil
}

// Location returns the fixed zone calendar fields are read in.
func (r Range) Location() *time.Location {
	return r.Start.Location()
}

// In returns the range with both boundaries converted to loc.
func (r Range) In(loc *time.Location) Range {
	return Range{
		Start: r.Start.In(loc),
		End:   r.End.In(loc),
	}
}

// Total returns the full length of the range.
func (r Range) Total() Duration {
	return Between(r.Start, r.End)
}

// Elapsed returns the span from the start of the range to now. It is negative
// before the range starts.
func (r Range) Elapsed(now time.Time) Duration {
	return Between(r.Start, now)
}

// Remaining returns the span from now until the end of the range. It is
// negative once the range has ended.
func (r Range) Remaining(now time.Time) Duration {
	return r.Total().Sub(r.Elapsed(now))
}

// Contains reports whether now lies within the range, boundaries included.
func (r Range) Contains(now time.Time) bool {
	return !now.Before(r.Start) && !now.After(r.End)
}

// FirstMonth returns the month containing the start of the range.
func (r Range) FirstMonth() YearMonth {
	return MonthOf(r.Start.In(r.Location()))
}

// LastMonth returns the month containing the end of the range.
func (r Range) LastMonth() YearMonth {
	return MonthOf(r.End.In(r.Location()))
}

// MonthCount returns the number of calendar months the range touches.
func (r Range) MonthCount() int {
	return MonthsBetween(r.FirstMonth(), r.LastMonth())
}
