// Package tracker runs the refresh pipeline shared by every presentation of
// a range: one instant in, one immutable snapshot out
package tracker

import (
	"time"

	"github.com/ayoisaiah/daysleft/internal/calendar"
	"github.com/ayoisaiah/daysleft/internal/daterange"
	"github.com/ayoisaiah/daysleft/internal/daycolor"
	"github.com/ayoisaiah/daysleft/internal/stats"
)

// DefaultTickInterval is the period at which presentations refresh (~60 Hz).
const DefaultTickInterval = 16 * time.Millisecond

// NowFunc supplies the current instant.
type NowFunc func() time.Time

// Snapshot is the complete view data for one tick.
type Snapshot struct {
	At       time.Time       `json:"at"`
	Range    daterange.Range `json:"range"`
	Calendar calendar.Model  `json:"calendar"`
	Stats    stats.Stats     `json:"stats"`
	Today    daycolor.Color  `json:"today"`
}

// TodayHex returns the colour of the snapshot's date as "#RRGGBB".
func (s Snapshot) TodayHex() string {
	return s.Today.Hex()
}

// Tracker pairs an immutable range with a clock.
type Tracker struct {
	now NowFunc
	rng daterange.Range
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock used by Tick.
func WithClock(fn NowFunc) Option {
	return func(t *Tracker) {
		t.now = fn
	}
}

// New validates r and returns a tracker for it. An invalid range fails here
// so that nothing is ever rendered from it.
func New(r daterange.Range, opts ...Option) (*Tracker, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	t := &Tracker{
		rng: r,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Range returns the tracked range.
func (t *Tracker) Range() daterange.Range {
	return t.rng
}

// Now returns the current instant in the range's zone.
func (t *Tracker) Now() time.Time {
	return t.now().In(t.rng.Location())
}

// Refresh recomputes everything from scratch for now. It keeps no state
// between calls.
func (t *Tracker) Refresh(now time.Time) (Snapshot, error) {
	now = now.In(t.rng.Location())

	model, err := calendar.Build(t.rng, now)
	if err != nil {
		return Snapshot{}, err
	}

	s, err := stats.Compute(t.rng, now)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		At:       now,
		Range:    t.rng,
		Calendar: model,
		Stats:    s,
		Today:    daycolor.For(now),
	}, nil
}

// Tick refreshes at the clock's current instant.
func (t *Tracker) Tick() (Snapshot, error) {
	return t.Refresh(t.Now())
}
