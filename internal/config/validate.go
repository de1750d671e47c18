package config

import (
	"time"

	"github.com/ayoisaiah/daysleft/internal/timeutil"
)

var (
	minTickInterval = time.Millisecond
	maxTickInterval = time.Minute

	maxPort uint = 65535
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if _, err := timeutil.LoadLocation(c.Range.Timezone); err != nil {
		return errInvalidTimezone.Wrap(err)
	}

	if _, err := c.DateRange(); err != nil {
		return errInvalidRange.Wrap(err)
	}

	if c.Display.TickInterval < minTickInterval ||
		c.Display.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(
			minTickInterval,
			maxTickInterval,
			c.Display.TickInterval,
		)
	}

	if c.Server.Port == 0 || c.Server.Port > maxPort {
		return errInvalidPort.Fmt(maxPort, c.Server.Port)
	}

	return nil
}

// parseTick accepts a Go duration string or a bare number of milliseconds.
func parseTick(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	ms, err := time.ParseDuration(s + "ms")
	if err != nil {
		return 0, errInvalidTickFormat.Fmt(s)
	}

	return ms, nil
}
