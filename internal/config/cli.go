package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/daysleft/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Start         string
	End           string
	Timezone      string
	Title         string
	Tick          string
	Cmd           string
	Port          uint
	DisableNotify bool
	NoCalendar    bool
	NoColor       bool
	Verbose       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Unset flags leave the current values alone.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Start:         ctx.String("start"),
			End:           ctx.String("end"),
			Timezone:      ctx.String("timezone"),
			Title:         ctx.String("title"),
			Tick:          ctx.String("tick"),
			Cmd:           ctx.String("cmd"),
			Port:          ctx.Uint("port"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoCalendar:    ctx.Bool("no-calendar"),
			NoColor:       ctx.Bool("no-color"),
			Verbose:       ctx.Bool("verbose"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config. Relative dates are
// resolved against now.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Timezone != "" {
		if _, err := timeutil.LoadLocation(opts.Timezone); err != nil {
			return errInvalidTimezone.Wrap(err)
		}

		c.Range.Timezone = opts.Timezone
	}

	loc := c.Location()

	if opts.Start != "" {
		start, err := timeutil.FromStr(opts.Start, now, loc)
		if err != nil {
			return errInvalidDate.Fmt("start").Wrap(err)
		}

		c.Range.Start = start
	}

	if opts.End != "" {
		end, err := timeutil.FromStr(opts.End, now, loc)
		if err != nil {
			return errInvalidDate.Fmt("end").Wrap(err)
		}

		c.Range.End = end
	}

	if opts.Tick != "" {
		tick, err := parseTick(opts.Tick)
		if err != nil {
			return err
		}

		c.Display.TickInterval = tick
	}

	if opts.Title != "" {
		c.Range.Title = opts.Title
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	if opts.Port > 0 {
		c.Server.Port = opts.Port
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoCalendar {
		c.Display.ShowCalendar = false
	}

	c.Settings.NoColor = opts.NoColor
	c.Settings.Verbose = opts.Verbose

	return nil
}
