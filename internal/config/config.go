// Package config loads daysleft settings from defaults, the YAML config file,
// a first-run prompt and command-line flags
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/daysleft/internal/daterange"
	"github.com/ayoisaiah/daysleft/internal/timeutil"
	"github.com/ayoisaiah/daysleft/internal/tracker"
)

type (
	// Config holds all configuration settings
	Config struct {
		Range         RangeConfig
		Display       DisplayConfig
		Notifications NotificationConfig
		Settings      SettingsConfig
		Server        ServerConfig
	}

	// RangeConfig describes the tracked date range.
	RangeConfig struct {
		Start    time.Time
		End      time.Time
		Timezone string
		Title    string
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		TickInterval   time.Duration
		DarkTheme      bool
		TwentyFourHour bool
		ShowCalendar   bool
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// Cmd is run once when the range ends.
		Cmd     string
		Verbose bool
		NoColor bool
	}

	// ServerConfig holds settings for the serve command.
	ServerConfig struct {
		Port uint
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

// Defaults for the tracked range.
var (
	DefaultStart = time.Date(2024, time.July, 16, 12, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2025, time.June, 13, 12, 0, 0, 0, time.UTC)
)

const (
	DefaultTickInterval = tracker.DefaultTickInterval
	DefaultPort         = 1111
	DefaultTitle        = "Days left"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Range: RangeConfig{
			Start:    DefaultStart,
			End:      DefaultEnd,
			Timezone: "UTC",
			Title:    DefaultTitle,
		},
		Display: DisplayConfig{
			TickInterval: DefaultTickInterval,
			DarkTheme:    true,
			ShowCalendar: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}

// New creates a new Config with default values, applies options in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Location returns the zone the range is tracked in. Unknown zones fall back
// to UTC; Validate reports them.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.LoadLocation(c.Range.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// DateRange returns the configured range expressed in the configured zone.
func (c *Config) DateRange() (daterange.Range, error) {
	loc := c.Location()

	return daterange.New(c.Range.Start.In(loc), c.Range.End.In(loc))
}
