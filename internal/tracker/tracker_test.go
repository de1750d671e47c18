package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/daysleft/internal/calendar"
	"github.com/ayoisaiah/daysleft/internal/daterange"
	"github.com/ayoisaiah/daysleft/internal/daycolor"
)

func defaultRange() daterange.Range {
	return daterange.Range{
		Start: time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewRejectsInvalidRange(t *testing.T) {
	r := defaultRange()
	r.Start, r.End = r.End, r.Start

	_, err := New(r)
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestTickUsesClock(t *testing.T) {
	now := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	tr, err := New(defaultRange(), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	snap, err := tr.Tick()
	require.NoError(t, err)

	assert.True(t, snap.At.Equal(now))
	assert.Equal(t, 162, snap.Stats.DayIndex)
	assert.Equal(t, daycolor.For(now), snap.Today)
	assert.Equal(t, snap.Today.Hex(), snap.TodayHex())

	current, ok := snap.Calendar.Current()
	require.True(t, ok)
	assert.Equal(t, calendar.Partial(24), current.Completion)
}

func TestRefreshIsIdempotent(t *testing.T) {
	tr, err := New(defaultRange())
	require.NoError(t, err)

	now := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)

	first, err := tr.Refresh(now)
	require.NoError(t, err)

	// an unrelated refresh in between must not leak into the next result
	_, err = tr.Refresh(now.AddDate(1, 0, 0))
	require.NoError(t, err)

	second, err := tr.Refresh(now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRefreshConvertsToRangeZone(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)

	tr, err := New(defaultRange().In(loc))
	require.NoError(t, err)

	// 31 December 20:00 UTC is already 1 January in the range's zone.
	snap, err := tr.Refresh(time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, loc, snap.At.Location())

	current, ok := snap.Calendar.Current()
	require.True(t, ok)
	assert.Equal(t, 2025, current.Year)
	assert.Equal(t, time.January, current.Month)
}
