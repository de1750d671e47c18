package calendar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayoisaiah/daysleft/internal/daterange"
)

// DurationKind identifies how much of a month is covered by the range.
type DurationKind uint8

const (
	DurationFull DurationKind = iota
	DurationStartOffset
	DurationEndOffset
	DurationBounded
)

var durationKindNames = map[DurationKind]string{
	DurationFull:        "full",
	DurationStartOffset: "start_offset",
	DurationEndOffset:   "end_offset",
	DurationBounded:     "bounded",
}

func (k DurationKind) String() string {
	return durationKindNames[k]
}

// MonthDuration describes the days of a month that fall inside the range.
// StartDay is the number of leading days excluded and EndDay is the last
// counted day; zero means the bound does not apply.
type MonthDuration struct {
	Kind     DurationKind
	StartDay int
	EndDay   int
}

// Full counts the entire month.
func Full() MonthDuration {
	return MonthDuration{Kind: DurationFull}
}

// StartOffset excludes the first skip days of the month.
func StartOffset(skip int) MonthDuration {
	return MonthDuration{Kind: DurationStartOffset, StartDay: skip}
}

// EndOffset counts only the first keep days of the month.
func EndOffset(keep int) MonthDuration {
	return MonthDuration{Kind: DurationEndOffset, EndDay: keep}
}

// Bounded is used when the range starts and ends in the same month: days
// startDay+1 through endDay are counted.
func Bounded(startDay, endDay int) MonthDuration {
	return MonthDuration{Kind: DurationBounded, StartDay: startDay, EndDay: endDay}
}

// Skipped returns the number of leading days that are not counted.
func (d MonthDuration) Skipped() int {
	switch d.Kind {
	case DurationStartOffset, DurationBounded:
		return d.StartDay
	}

	return 0
}

// LastDay returns the last counted day for a month of the given length.
func (d MonthDuration) LastDay(length int) int {
	switch d.Kind {
	case DurationEndOffset, DurationBounded:
		return d.EndDay
	}

	return length
}

// Counted returns the number of counted days for a month of the given length.
func (d MonthDuration) Counted(length int) int {
	return max(d.LastDay(length)-d.Skipped(), 0)
}

func (d MonthDuration) String() string {
	switch d.Kind {
	case DurationStartOffset:
		return fmt.Sprintf("StartOffset(%d)", d.StartDay)
	case DurationEndOffset:
		return fmt.Sprintf("EndOffset(%d)", d.EndDay)
	case DurationBounded:
		return fmt.Sprintf("Bounded(%d, %d)", d.StartDay, d.EndDay)
	}

	return "Full"
}

func (d MonthDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string `json:"kind"`
		StartDay int    `json:"start_day,omitempty"`
		EndDay   int    `json:"end_day,omitempty"`
	}{
		Kind:     d.Kind.String(),
		StartDay: d.StartDay,
		EndDay:   d.EndDay,
	})
}

// State identifies how much of a month lies before the reference instant.
type State uint8

const (
	StateNotStarted State = iota
	StatePartial
	StateCompleted
)

var stateNames = map[State]string{
	StateNotStarted: "not_started",
	StatePartial:    "partial",
	StateCompleted:  "completed",
}

func (s State) String() string {
	return stateNames[s]
}

// MonthCompletion describes the progress through a month. Elapsed only
// applies to partial months and counts whole counted days.
type MonthCompletion struct {
	State   State
	Elapsed int
}

func Completed() MonthCompletion {
	return MonthCompletion{State: StateCompleted}
}

func NotStarted() MonthCompletion {
	return MonthCompletion{State: StateNotStarted}
}

func Partial(elapsed int) MonthCompletion {
	return MonthCompletion{State: StatePartial, Elapsed: elapsed}
}

// ElapsedDays returns the elapsed days given the month's counted days.
func (c MonthCompletion) ElapsedDays(counted int) int {
	switch c.State {
	case StateCompleted:
		return counted
	case StatePartial:
		return c.Elapsed
	}

	return 0
}

func (c MonthCompletion) String() string {
	switch c.State {
	case StateCompleted:
		return "Completed"
	case StatePartial:
		return fmt.Sprintf("Partial(%d)", c.Elapsed)
	}

	return "NotStarted"
}

func (c MonthCompletion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		State   string `json:"state"`
		Elapsed int    `json:"elapsed_days,omitempty"`
	}{
		State:   c.State.String(),
		Elapsed: c.Elapsed,
	})
}

// DayState is the rendering state of a single day cell.
type DayState uint8

const (
	DayOutside DayState = iota
	DayElapsed
	DayRemaining
)

// Month is one covered calendar month. It is derived from the range and a
// reference instant and is never mutated after Build returns it.
type Month struct {
	Year       int
	Month      time.Month
	Completion MonthCompletion
	Duration   MonthDuration
}

func (m Month) YearMonth() daterange.YearMonth {
	return daterange.YearMonth{Year: m.Year, Month: m.Month}
}

func (m Month) Name() string {
	return m.Month.String()
}

// Length returns the number of days in the calendar month.
func (m Month) Length() int {
	return daterange.DaysIn(m.Year, m.Month)
}

// CountedDays returns the number of days of the month inside the range.
func (m Month) CountedDays() int {
	return m.Duration.Counted(m.Length())
}

func (m Month) ElapsedDays() int {
	return m.Completion.ElapsedDays(m.CountedDays())
}

func (m Month) RemainingDays() int {
	return m.CountedDays() - m.ElapsedDays()
}

// FirstCountedDay returns the day of the month of the first counted day.
func (m Month) FirstCountedDay() int {
	return m.Duration.Skipped() + 1
}

// WeekdayOffset returns the Monday-based weekday of the first day of the
// month.
func (m Month) WeekdayOffset() int {
	return m.YearMonth().WeekdayOffset()
}

// GridPadding returns the number of empty cells that precede the first
// counted day in a Monday-first week grid.
func (m Month) GridPadding() int {
	return (m.WeekdayOffset() + m.Duration.Skipped()) % 7
}

// Current reports whether the reference instant falls in this month.
func (m Month) Current() bool {
	return m.Completion.State == StatePartial
}

// DayState reports how the given day of the month should be drawn.
func (m Month) DayState(day int) DayState {
	first := m.FirstCountedDay()
	last := first + m.CountedDays() - 1

	switch {
	case day < first || day > last:
		return DayOutside
	case day < first+m.ElapsedDays():
		return DayElapsed
	}

	return DayRemaining
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d %s %s", m.Name(), m.Year, m.Duration, m.Completion)
}

func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name          string          `json:"name"`
		Completion    MonthCompletion `json:"completion"`
		Duration      MonthDuration   `json:"duration"`
		Year          int             `json:"year"`
		Month         int             `json:"month"`
		CountedDays   int             `json:"counted_days"`
		ElapsedDays   int             `json:"elapsed_days"`
		RemainingDays int             `json:"remaining_days"`
		WeekdayOffset int             `json:"weekday_offset"`
	}{
		Name:          m.Name(),
		Completion:    m.Completion,
		Duration:      m.Duration,
		Year:          m.Year,
		Month:         int(m.Month),
		CountedDays:   m.CountedDays(),
		ElapsedDays:   m.ElapsedDays(),
		RemainingDays: m.RemainingDays(),
		WeekdayOffset: m.WeekdayOffset(),
	})
}
