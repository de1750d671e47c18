// Package stats computes the live progress readout for a date range
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ayoisaiah/daysleft/internal/daterange"
)

// Stats is the progress of a range at one instant. Values are not clamped:
// a negative percentage means the range has not started and a negative
// remaining duration means it has ended.
type Stats struct {
	CurrentDate     time.Time
	Elapsed         daterange.Duration
	Remaining       daterange.Duration
	Total           daterange.Duration
	PercentComplete float64
	DayIndex        int
	TotalDays       int
	DaysLeft        int
}

// Compute derives the progress of r at now.
func Compute(r daterange.Range, now time.Time) (Stats, error) {
	if err := r.Validate(); err != nil {
		return Stats{}, err
	}

	total := r.Total()
	elapsed := r.Elapsed(now)
	remaining := total.Sub(elapsed)

	return Stats{
		CurrentDate: now.In(r.Location()),
		Elapsed:     elapsed,
		Remaining:   remaining,
		Total:       total,
		PercentComplete: float64(elapsed.Milliseconds()) /
			float64(total.Milliseconds()) * 100,
		// the day in progress counts as day N
		DayIndex:  int(elapsed.Days()) + 1,
		TotalDays: int(total.Days()),
		DaysLeft:  int(remaining.Days()) - 1,
	}, nil
}

// Started reports whether the range has begun.
func (s Stats) Started() bool {
	return s.Elapsed >= 0
}

// Ended reports whether the range is over.
func (s Stats) Ended() bool {
	return s.Remaining <= 0
}

// Fraction returns the completed share clamped to [0, 1] for progress bars.
func (s Stats) Fraction() float64 {
	if math.IsNaN(s.PercentComplete) {
		return 0
	}

	return min(max(s.PercentComplete/100, 0), 1)
}

// Countdown formats the remaining time as H:MM:SS.mmm.
func (s Stats) Countdown() string {
	return FormatCountdown(s.Remaining)
}

// Heading returns the current date as "16th of July, 2024".
func (s Stats) Heading() string {
	return fmt.Sprintf(
		"%s of %s, %d",
		humanize.Ordinal(s.CurrentDate.Day()),
		s.CurrentDate.Month(),
		s.CurrentDate.Year(),
	)
}

// DayLine returns "Day N of M (K left)".
func (s Stats) DayLine() string {
	return fmt.Sprintf("Day %d of %d (%d left)", s.DayIndex, s.TotalDays, s.DaysLeft)
}

// PercentString renders the unclamped percentage with 20 decimal places.
func (s Stats) PercentString() string {
	return fmt.Sprintf("%.20f%%", s.PercentComplete)
}

// FormatCountdown renders d as H:MM:SS.mmm. Hours are not wrapped into days
// and a negative span keeps its sign as a leading '-'.
func FormatCountdown(d daterange.Duration) string {
	sign := ""
	if d.Negative() {
		sign = "-"
		d = d.Abs()
	}

	return fmt.Sprintf(
		"%s%d:%02d:%02d.%03d",
		sign,
		d.Hours(),
		d.Minutes()%60,
		d.Seconds()%60,
		d.Milliseconds()%1000,
	)
}

// EndsIn describes the end of the range relative to the current date, such
// as "3 months from now" or "2 days ago".
func (s Stats) EndsIn() string {
	end := s.Remaining.After(s.CurrentDate)

	return humanize.RelTime(end, s.CurrentDate, "ago", "from now")
}

// Summary renders the readout as plain text lines.
func (s Stats) Summary() string {
	var b strings.Builder

	b.WriteString(s.Heading() + "\n")
	b.WriteString(s.DayLine() + "\n")
	b.WriteString(s.Countdown() + " (HH:MM:SS.mmm)\n")
	b.WriteString(s.PercentString() + "\n")

	return b.String()
}

func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentDate     time.Time `json:"current_date"`
		Heading         string    `json:"heading"`
		DayLine         string    `json:"day_line"`
		Countdown       string    `json:"countdown"`
		ElapsedMs       int64     `json:"elapsed_ms"`
		RemainingMs     int64     `json:"remaining_ms"`
		TotalMs         int64     `json:"total_ms"`
		PercentComplete float64   `json:"percent_complete"`
		DayIndex        int       `json:"day_index"`
		TotalDays       int       `json:"total_days"`
		DaysLeft        int       `json:"days_left"`
	}{
		CurrentDate:     s.CurrentDate,
		Heading:         s.Heading(),
		DayLine:         s.DayLine(),
		Countdown:       s.Countdown(),
		ElapsedMs:       s.Elapsed.Milliseconds(),
		RemainingMs:     s.Remaining.Milliseconds(),
		TotalMs:         s.Total.Milliseconds(),
		PercentComplete: s.PercentComplete,
		DayIndex:        s.DayIndex,
		TotalDays:       s.TotalDays,
		DaysLeft:        s.DaysLeft,
	})
}
