package calendar

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/daysleft/internal/daterange"
)

func defaultRange(t *testing.T) daterange.Range {
	t.Helper()

	r, err := daterange.New(
		time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return r
}

func monthAt(t *testing.T, model Model, year int, month time.Month) Month {
	t.Helper()

	for _, m := range model.Months() {
		if m.Year == year && m.Month == month {
			return m
		}
	}

	t.Fatalf("month %d-%02d not in model", year, month)

	return Month{}
}

func TestBuildRejectsInvalidRange(t *testing.T) {
	r := daterange.Range{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := Build(r, time.Now())
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestBuildOnStartInstant(t *testing.T) {
	r := defaultRange(t)

	model, err := Build(r, r.Start)
	require.NoError(t, err)

	july := monthAt(t, model, 2024, time.July)
	assert.Equal(t, StartOffset(16), july.Duration)
	assert.Equal(t, Partial(0), july.Completion)
	assert.Equal(t, 15, july.CountedDays())
	assert.Equal(t, 17, july.FirstCountedDay())

	for _, m := range model.Months()[1:] {
		assert.Equal(t, NotStarted(), m.Completion, m.String())
	}
}

func TestBuildOnChristmas(t *testing.T) {
	r := defaultRange(t)
	now := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	model, err := Build(r, now)
	require.NoError(t, err)

	require.Len(t, model, 2)
	assert.Equal(t, 2024, model[0].Year)
	assert.Equal(t, 2025, model[1].Year)
	assert.Len(t, model[0].Months, 6)
	assert.Len(t, model[1].Months, 6)

	for _, m := range model[0].Months[:5] {
		assert.Equal(t, Completed(), m.Completion, m.String())
	}

	december := monthAt(t, model, 2024, time.December)
	assert.Equal(t, Partial(24), december.Completion)
	assert.Equal(t, Full(), december.Duration)

	for _, m := range model[1].Months {
		assert.Equal(t, NotStarted(), m.Completion, m.String())
	}

	current, ok := model.Current()
	require.True(t, ok)
	assert.Equal(t, time.December, current.Month)
	assert.False(t, model[0].Completed())
}

func TestBuildDurations(t *testing.T) {
	r := defaultRange(t)

	model, err := Build(r, r.Start)
	require.NoError(t, err)

	months := model.Months()
	require.Len(t, months, 12)

	assert.Equal(t, StartOffset(16), months[0].Duration)
	assert.Equal(t, EndOffset(13), months[11].Duration)
	assert.Equal(t, 13, months[11].CountedDays())

	for _, m := range months[1:11] {
		assert.Equal(t, Full(), m.Duration, m.String())
	}

	feb := monthAt(t, model, 2025, time.February)
	assert.Equal(t, 28, feb.CountedDays())
}

func TestLeapFebruary(t *testing.T) {
	r, err := daterange.New(
		time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	model, err := Build(r, time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	feb24 := monthAt(t, model, 2024, time.February)
	assert.Equal(t, Full(), feb24.Duration)
	assert.Equal(t, 29, feb24.CountedDays())
	assert.Equal(t, Partial(28), feb24.Completion)
	assert.Equal(t, 1, feb24.RemainingDays())

	feb25 := monthAt(t, model, 2025, time.February)
	assert.Equal(t, 28, feb25.CountedDays())
}

func TestSameMonthRange(t *testing.T) {
	r, err := daterange.New(
		time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 17, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	cases := []struct {
		Name string
		Now  time.Time
		Want MonthCompletion
	}{
		{Name: "before the month", Now: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Want: NotStarted()},
		{Name: "before start day", Now: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Want: Partial(0)},
		{Name: "mid range", Now: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Want: Partial(4)},
		{Name: "past end day", Now: time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), Want: Partial(15)},
		{Name: "after the month", Now: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Want: Completed()},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			model, err := Build(r, tc.Now)
			require.NoError(t, err)

			months := model.Months()
			require.Len(t, months, 1)

			m := months[0]
			assert.Equal(t, Bounded(5, 20), m.Duration)
			assert.Equal(t, 15, m.CountedDays())
			assert.Equal(t, tc.Want, m.Completion)
			assert.Equal(t, m.CountedDays(), m.ElapsedDays()+m.RemainingDays())
		})
	}
}

func TestBuildUsesRangeLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	r, err := daterange.New(
		time.Date(2024, 7, 16, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 13, 12, 0, 0, 0, loc),
	)
	require.NoError(t, err)

	// 1 August 02:00 UTC is still 31 July in the range's zone.
	model, err := Build(r, time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	july := monthAt(t, model, 2024, time.July)
	assert.Equal(t, Partial(14), july.Completion)
}

func TestBuildAcrossYearBoundaries(t *testing.T) {
	r, err := daterange.New(
		time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	model, err := Build(r, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var years []int
	for _, y := range model {
		years = append(years, y.Year)
		assert.True(t, y.Completed())
	}

	if diff := cmp.Diff([]int{2023, 2024, 2025, 2026}, years); diff != "" {
		t.Errorf("years mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, model[0].Months, 2)
	assert.Len(t, model[1].Months, 12)
	assert.Len(t, model[3].Months, 1)
	assert.Equal(t, StartOffset(30), model[0].Months[0].Duration)
	assert.Equal(t, 0, model[0].Months[0].CountedDays())
}

// randomRange returns a valid range spanning up to a few years.
func randomRange(rnd *rand.Rand) daterange.Range {
	base := time.Date(1998, 1, 1, 0, 0, 0, 0, time.UTC)
	start := base.Add(time.Duration(rnd.Int64N(int64(40 * 365 * 24 * time.Hour))))
	end := start.Add(time.Hour + time.Duration(rnd.Int64N(int64(4*365*24*time.Hour))))

	return daterange.Range{Start: start, End: end}
}

func TestBuildProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 300; i++ {
		r := randomRange(rnd)
		span := r.End.Sub(r.Start)
		now := r.Start.Add(time.Duration(rnd.Int64N(int64(span)*3)) - span)

		model, err := Build(r, now)
		require.NoError(t, err)

		months := model.Months()
		require.Len(t, months, r.MonthCount())

		var partials, starts, ends int

		for j, m := range months {
			assert.Equal(t, m.CountedDays(), m.ElapsedDays()+m.RemainingDays(), m.String())
			assert.GreaterOrEqual(t, m.RemainingDays(), 0)

			switch m.Duration.Kind {
			case DurationStartOffset:
				starts++
				assert.Equal(t, 0, j)
			case DurationEndOffset:
				ends++
				assert.Equal(t, len(months)-1, j)
			case DurationBounded:
				starts++
				ends++
			}

			if m.Completion.State == StatePartial {
				partials++
			}

			if j > 0 {
				prev := months[j-1]
				assert.True(t, prev.YearMonth().Before(m.YearMonth()))
				assert.GreaterOrEqual(t, int(prev.Completion.State), int(m.Completion.State))
			}
		}

		assert.LessOrEqual(t, partials, 1)
		assert.Equal(t, 1, starts)
		assert.Equal(t, 1, ends)

		if daterange.MonthOf(now).Before(r.FirstMonth()) {
			for _, m := range months {
				assert.Equal(t, NotStarted(), m.Completion)
			}
		}

		if daterange.MonthOf(now).After(r.LastMonth()) {
			for _, m := range months {
				assert.Equal(t, Completed(), m.Completion)
			}
		}
	}
}

func TestDayState(t *testing.T) {
	m := Month{
		Year:       2024,
		Month:      time.July,
		Duration:   StartOffset(16),
		Completion: Partial(3),
	}

	assert.Equal(t, DayOutside, m.DayState(16))
	assert.Equal(t, DayElapsed, m.DayState(17))
	assert.Equal(t, DayElapsed, m.DayState(19))
	assert.Equal(t, DayRemaining, m.DayState(20))
	assert.Equal(t, DayRemaining, m.DayState(31))
	assert.Equal(t, DayOutside, m.DayState(32))

	// 1 July 2024 was a Monday, so day 17 sits in the Wednesday column.
	assert.Equal(t, 0, m.WeekdayOffset())
	assert.Equal(t, 2, m.GridPadding())
}

func TestMonthJSON(t *testing.T) {
	m := Month{
		Year:       2025,
		Month:      time.June,
		Duration:   EndOffset(13),
		Completion: Partial(4),
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)

	want := `{"name":"June","completion":{"state":"partial","elapsed_days":4},` +
		`"duration":{"kind":"end_offset","end_day":13},"year":2025,"month":6,` +
		`"counted_days":13,"elapsed_days":4,"remaining_days":9,"weekday_offset":6}`

	assert.JSONEq(t, want, string(b))
}
