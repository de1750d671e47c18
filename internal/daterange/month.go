package daterange

import (
	"fmt"
	"time"
)

var monthLengths = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Offsets used by Sakamoto's day-of-week method, indexed by month-1.
var weekdayTable = [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the length of month m in year. It returns 0 for a month
// outside 1-12.
func DaysIn(year int, m time.Month) int {
	if m < time.January || m > time.December {
		return 0
	}

	if m == time.February && IsLeap(year) {
		return 29
	}

	return monthLengths[m-1]
}

// Weekday returns the day of the week of the given Gregorian date.
func Weekday(year int, m time.Month, day int) time.Weekday {
	if m < time.March {
		year--
	}

	w := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) +
		weekdayTable[m-1] + day

	return time.Weekday(((w % 7) + 7) % 7)
}

// WeekdayOffset returns the number of days between the preceding Monday and
// the given date (0 for Monday, 6 for Sunday).
func WeekdayOffset(year int, m time.Month, day int) int {
	return (int(Weekday(year, m, day)) + 6) % 7
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month t falls in, read in t's location.
func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Valid reports whether the month component lies in 1-12.
func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

// Next returns the following calendar month, rolling December over into
// January of the next year.
func (ym YearMonth) Next() (YearMonth, error) {
	if !ym.Valid() {
		return ym, ErrInvalidMonth.Fmt(int(ym.Month))
	}

	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}, nil
	}

	next := YearMonth{Year: ym.Year, Month: ym.Month + 1}
	if !next.Valid() {
		return ym, ErrInvalidMonth.Fmt(int(next.Month))
	}

	return next, nil
}

// Compare returns -1, 0 or +1 depending on whether ym is before, equal to or
// after o.
func (ym YearMonth) Compare(o YearMonth) int {
	switch {
	case ym.Year < o.Year:
		return -1
	case ym.Year > o.Year:
		return 1
	case ym.Month < o.Month:
		return -1
	case ym.Month > o.Month:
		return 1
	}

	return 0
}

func (ym YearMonth) Before(o YearMonth) bool {
	return ym.Compare(o) < 0
}

func (ym YearMonth) After(o YearMonth) bool {
	return ym.Compare(o) > 0
}

// Days returns the length of the month.
func (ym YearMonth) Days() int {
	return DaysIn(ym.Year, ym.Month)
}

// First returns midnight on the first day of the month in loc.
func (ym YearMonth) First(loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// WeekdayOffset returns the Monday-based weekday offset of the first day.
func (ym YearMonth) WeekdayOffset() int {
	return WeekdayOffset(ym.Year, ym.Month, 1)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MonthsBetween returns the inclusive number of months from one month to
// another. It is zero or negative when to precedes from.
func MonthsBetween(from, to YearMonth) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month) + 1
}
