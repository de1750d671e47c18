package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/daysleft/internal/timeutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyRangeStart           = "range.start"
	keyRangeEnd             = "range.end"
	keyRangeTimezone        = "range.timezone"
	keyRangeTitle           = "range.title"
	keyTickInterval         = "display.tick_interval"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyShowCalendar         = "display.show_calendar"
	keyNotificationsEnabled = "notifications.enabled"
	keyCmd                  = "settings.cmd"
	keyServerPort           = "server.port"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created from the current values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the values already held by c as defaults, so that
// defaults and prompt answers end up in a freshly written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyRangeStart, c.Range.Start.Format(time.RFC3339))
	v.SetDefault(keyRangeEnd, c.Range.End.Format(time.RFC3339))
	v.SetDefault(keyRangeTimezone, c.Range.Timezone)
	v.SetDefault(keyRangeTitle, c.Range.Title)
	v.SetDefault(keyTickInterval, c.Display.TickInterval.String())
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyTwentyFourHour, c.Display.TwentyFourHour)
	v.SetDefault(keyShowCalendar, c.Display.ShowCalendar)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyCmd, c.Settings.Cmd)
	v.SetDefault(keyServerPort, c.Server.Port)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Range.Timezone = v.GetString(keyRangeTimezone)

	loc, err := timeutil.LoadLocation(c.Range.Timezone)
	if err != nil {
		return errInvalidTimezone.Wrap(err)
	}

	c.Range.Start, err = readTime(v, keyRangeStart, "start", loc)
	if err != nil {
		return err
	}

	c.Range.End, err = readTime(v, keyRangeEnd, "end", loc)
	if err != nil {
		return err
	}

	c.Display.TickInterval, err = parseTick(v.GetString(keyTickInterval))
	if err != nil {
		return err
	}

	c.Range.Title = v.GetString(keyRangeTitle)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.ShowCalendar = v.GetBool(keyShowCalendar)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Settings.Cmd = v.GetString(keyCmd)
	c.Server.Port = v.GetUint(keyServerPort)

	return nil
}

// readTime reads a date that YAML may have decoded as a timestamp or left as
// a string. Only absolute dates are accepted so that the range does not move
// between launches.
func readTime(
	v *viper.Viper,
	key, label string,
	loc *time.Location,
) (time.Time, error) {
	switch val := v.Get(key).(type) {
	case time.Time:
		return val.In(loc), nil
	case string:
		t, err := timeutil.Parse(val, loc)
		if err != nil {
			return time.Time{}, errInvalidDate.Fmt(label).Wrap(err)
		}

		return t, nil
	default:
		return time.Time{}, errInvalidDateValue.Fmt(label, val)
	}
}
