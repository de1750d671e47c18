package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/daysleft/internal/osutil"
)

// GoldenTest is implemented by test cases whose output is checked against a
// golden file in the package's testdata directory.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	compareOutput := func(output []byte, goldenFileName string) {
		if output != nil {
			g.Assert(t, goldenFileName, output)
		} else {
			f := filepath.Join("testdata", goldenFileName+".golden")
			if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
				t.Fatalf("expected no output, but golden file exists: %s", f)
			}
		}
	}

	snap, golden := tc.Output()

	compareOutput(snap, golden)
}

// FixedClock returns a clock that always reports v.
func FixedClock(v time.Time) func() time.Time {
	return func() time.Time {
		return v
	}
}

// Clock is a manually advanced clock.
type Clock struct {
	now time.Time
}

// NewClock returns a clock stopped at v.
func NewClock(v time.Time) *Clock {
	return &Clock{now: v}
}

// Now reports the clock's current instant.
func (c *Clock) Now() time.Time {
	return c.now
}

// Set moves the clock to v.
func (c *Clock) Set(v time.Time) {
	c.now = v
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
