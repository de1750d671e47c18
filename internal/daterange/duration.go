package daterange

import "time"

// Day is the length of a calendar day in the fixed reference zone.
const Day = Duration(24 * time.Hour)

// Duration is a signed span of time. All whole-unit conversions truncate
// toward zero.
type Duration time.Duration

// Between returns the span from one instant to another.
func Between(from, to time.Time) Duration {
	return Duration(to.Sub(from))
}

// Days returns the number of whole days in d.
func (d Duration) Days() int64 {
	return int64(d / Day)
}

// Hours returns the number of whole hours in d.
func (d Duration) Hours() int64 {
	return int64(time.Duration(d) / time.Hour)
}

// Minutes returns the number of whole minutes in d.
func (d Duration) Minutes() int64 {
	return int64(time.Duration(d) / time.Minute)
}

// Seconds returns the number of whole seconds in d.
func (d Duration) Seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// Milliseconds returns the number of whole milliseconds in d.
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

func (d Duration) Add(o Duration) Duration {
	return d + o
}

func (d Duration) Sub(o Duration) Duration {
	return d - o
}

func (d Duration) Neg() Duration {
	return -d
}

func (d Duration) Abs() Duration {
	return Duration(time.Duration(d).Abs())
}

// Negative reports whether d is below zero.
func (d Duration) Negative() bool {
	return d < 0
}

// After returns the instant d after t.
func (d Duration) After(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
