package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStrLayouts(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC)

	cases := []string{
		"2024-07-16T12:00:00Z",
		"2024-07-16 12:00:00",
		"2024-07-16 12:00",
		"  2024-07-16 12:00  ",
	}

	for _, value := range cases {
		got, err := FromStr(value, now, time.UTC)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), "%s parsed as %s", value, got)
	}
}

func TestFromStrDateOnlyUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	got, err := FromStr("2025-06-13", time.Now(), loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, loc), got)
}

func TestFromStrRFC3339KeepsInstant(t *testing.T) {
	got, err := FromStr("2025-06-13T12:00:00+02:00", time.Now(), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())
}

func TestFromStrRejectsEmpty(t *testing.T) {
	_, err := FromStr("   ", time.Now(), time.UTC)
	assert.ErrorIs(t, err, errEmptyDate)
}

func TestParseRejectsRelativePhrases(t *testing.T) {
	got, err := Parse("2025-06-13 09:30", time.UTC)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 6, 13, 9, 30, 0, 0, time.UTC).Equal(got))

	_, err = Parse("next friday", time.UTC)
	assert.ErrorIs(t, err, errNotAbsolute)

	_, err = Parse("", time.UTC)
	assert.ErrorIs(t, err, errEmptyDate)
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.ErrorIs(t, err, errUnknownTimezone)
}

func TestFormat(t *testing.T) {
	v := time.Date(2024, 7, 16, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "Jul 16, 2024 15:04:05", Format(v, true))
	assert.Equal(t, "Jul 16, 2024 03:04:05 PM", Format(v, false))
}
