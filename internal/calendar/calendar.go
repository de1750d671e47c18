// Package calendar turns a date range and a reference instant into the
// year/month grid drawn by the presentation layer
package calendar

import (
	"time"

	"github.com/ayoisaiah/daysleft/internal/daterange"
)

// Year groups the covered months of one calendar year in ascending order.
type Year struct {
	Year   int     `json:"year"`
	Months []Month `json:"months"`
}

// Completed reports whether every covered month of the year is in the past.
func (y Year) Completed() bool {
	for i := range y.Months {
		if y.Months[i].Completion.State != StateCompleted {
			return false
		}
	}

	return len(y.Months) > 0
}

// Model is the ordered sequence of years covered by a range.
type Model []Year

// Months flattens the model into a single ascending sequence.
func (cm Model) Months() []Month {
	var months []Month

	for _, y := range cm {
		months = append(months, y.Months...)
	}

	return months
}

// Current returns the month the reference instant falls in, if it is covered.
func (cm Model) Current() (Month, bool) {
	for _, y := range cm {
		for _, m := range y.Months {
			if m.Current() {
				return m, true
			}
		}
	}

	return Month{}, false
}

// Build enumerates every month from the start of r through the end of r and
// annotates each with its duration and its completion relative to now.
func Build(r daterange.Range, now time.Time) (Model, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	loc := r.Location()
	now = now.In(loc)
	startDay, endDay := r.Start.In(loc).Day(), r.End.In(loc).Day()

	first, last := r.FirstMonth(), r.LastMonth()
	current := daterange.MonthOf(now)

	model := make(Model, 0, last.Year-first.Year+1)

	for ym := first; !ym.After(last); {
		m := Month{
			Year:     ym.Year,
			Month:    ym.Month,
			Duration: monthDuration(ym, first, last, startDay, endDay),
		}

		m.Completion = monthCompletion(m, current, now.Day())

		if n := len(model); n == 0 || model[n-1].Year != ym.Year {
			model = append(model, Year{Year: ym.Year})
		}

		y := &model[len(model)-1]
		y.Months = append(y.Months, m)

		next, err := ym.Next()
		if err != nil {
			return nil, err
		}

		ym = next
	}

	return model, nil
}

func monthDuration(
	ym, first, last daterange.YearMonth,
	startDay, endDay int,
) MonthDuration {
	isFirst, isLast := ym == first, ym == last

	switch {
	case isFirst && isLast:
		return Bounded(startDay, endDay)
	case isFirst:
		return StartOffset(startDay)
	case isLast:
		return EndOffset(endDay)
	}

	return Full()
}

// monthCompletion compares the month to the month containing now. Only whole
// counted days before today's date count as elapsed.
func monthCompletion(m Month, current daterange.YearMonth, today int) MonthCompletion {
	switch m.YearMonth().Compare(current) {
	case -1:
		return Completed()
	case 1:
		return NotStarted()
	}

	elapsed := today - 1 - m.Duration.Skipped()

	return Partial(min(max(elapsed, 0), m.CountedDays()))
}
