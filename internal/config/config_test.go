package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/daysleft/internal/daterange"
)

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	for _, key := range []string{"range:", "display:", "notifications:", "settings:", "server:"} {
		assert.Contains(t, string(b), key)
	}

	// Reading the written file back yields the same values.
	again, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := `range:
  start: "2024-09-01 08:00"
  end: "2025-06-30T17:00:00+02:00"
  timezone: Europe/Berlin
  title: School year
display:
  tick_interval: 40
  dark_theme: false
  24hr_clock: true
  show_calendar: false
notifications:
  enabled: false
settings:
  cmd: "notify-send done"
server:
  port: 8080
`
	require.NoError(t, os.WriteFile(configPath, []byte(yml), 0o600))

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	assert.True(t, time.Date(2024, 9, 1, 8, 0, 0, 0, berlin).Equal(cfg.Range.Start))
	assert.True(t, time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC).Equal(cfg.Range.End))
	assert.Equal(t, "Europe/Berlin", cfg.Range.Timezone)
	assert.Equal(t, "School year", cfg.Range.Title)
	assert.Equal(t, 40*time.Millisecond, cfg.Display.TickInterval)
	assert.False(t, cfg.Display.DarkTheme)
	assert.True(t, cfg.Display.TwentyFourHour)
	assert.False(t, cfg.Display.ShowCalendar)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "notify-send done", cfg.Settings.Cmd)
	assert.Equal(t, uint(8080), cfg.Server.Port)

	r, err := cfg.DateRange()
	require.NoError(t, err)
	assert.Equal(t, berlin, r.Location())
}

func TestViperRejectsBadDate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := "range:\n  start: \"\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yml), 0o600))

	_, err := New(WithViperConfig(configPath))
	assert.ErrorIs(t, err, errConfigOption)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestViperRejectsRelativeDate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	yml := "range:\n  start: next friday\n  end: \"2030-01-01\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yml), 0o600))

	_, err := New(WithViperConfig(configPath))
	assert.ErrorIs(t, err, errConfigOption)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name   string
		Modify func(c *Config)
		Want   error
	}{
		{
			Name:   "defaults",
			Modify: func(*Config) {},
		},
		{
			Name: "end before start",
			Modify: func(c *Config) {
				c.Range.Start, c.Range.End = c.Range.End, c.Range.Start
			},
			Want: daterange.ErrInvalidRange,
		},
		{
			Name: "empty range",
			Modify: func(c *Config) {
				c.Range.End = c.Range.Start
			},
			Want: daterange.ErrInvalidRange,
		},
		{
			Name: "unknown timezone",
			Modify: func(c *Config) {
				c.Range.Timezone = "Nowhere/Special"
			},
			Want: errInvalidTimezone,
		},
		{
			Name: "tick too short",
			Modify: func(c *Config) {
				c.Display.TickInterval = time.Microsecond
			},
			Want: errInvalidTickInterval,
		},
		{
			Name: "tick too long",
			Modify: func(c *Config) {
				c.Display.TickInterval = time.Hour
			},
			Want: errInvalidTickInterval,
		},
		{
			Name: "port out of range",
			Modify: func(c *Config) {
				c.Server.Port = 70000
			},
			Want: errInvalidPort,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := Default()
			tc.Modify(cfg)

			err := cfg.Validate()
			if tc.Want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.Want)
		})
	}
}

func cliContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("daysleft", flag.ContinueOnError)

	for _, name := range []string{"start", "end", "timezone", "title", "tick", "cmd"} {
		_ = set.String(name, "", "")
	}

	_ = set.Uint("port", 0, "")

	for _, name := range []string{"disable-notification", "no-calendar", "no-color", "verbose"} {
		_ = set.Bool(name, false, "")
	}

	for k, v := range flags {
		require.NoError(t, set.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, set, nil)
}

func TestCLIConfig(t *testing.T) {
	ctx := cliContext(t, map[string]string{
		"start":                "2025-01-01",
		"end":                  "2025-12-31 18:00",
		"timezone":             "America/New_York",
		"tick":                 "100ms",
		"port":                 "9000",
		"disable-notification": "true",
		"verbose":              "true",
	})

	cfg, err := New(WithCLIConfig(ctx))
	require.NoError(t, err)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	assert.True(t, time.Date(2025, 1, 1, 0, 0, 0, 0, ny).Equal(cfg.Range.Start))
	assert.True(t, time.Date(2025, 12, 31, 18, 0, 0, 0, ny).Equal(cfg.Range.End))
	assert.Equal(t, 100*time.Millisecond, cfg.Display.TickInterval)
	assert.Equal(t, uint(9000), cfg.Server.Port)
	assert.False(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Settings.Verbose)
	assert.True(t, cfg.Display.ShowCalendar)
}

func TestCLIConfigKeepsUnsetValues(t *testing.T) {
	cfg, err := New(WithCLIConfig(cliContext(t, nil)))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCLIConfigOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	ctx := cliContext(t, map[string]string{
		"title": "Sabbatical",
		"tick":  "250",
	})

	cfg, err := New(WithViperConfig(configPath), WithCLIConfig(ctx))
	require.NoError(t, err)

	assert.Equal(t, "Sabbatical", cfg.Range.Title)
	assert.Equal(t, 250*time.Millisecond, cfg.Display.TickInterval)
}

func TestCLIConfigRejectsBadInput(t *testing.T) {
	cases := map[string]map[string]string{
		"timezone": {"timezone": "Mars/Base"},
		"tick":     {"tick": "soon"},
	}

	for name, flags := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(WithCLIConfig(cliContext(t, flags)))
			assert.ErrorIs(t, err, errConfigOption)
		})
	}
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, nil, 0o600))

	cfg := Default()
	require.NoError(t, WithPromptConfig(configPath)(cfg))

	assert.Equal(t, Default(), cfg)
}

func TestPromptSkippedWithoutTerminal(t *testing.T) {
	orig := Stdin
	Stdin = strings.NewReader("")

	t.Cleanup(func() { Stdin = orig })

	cfg := Default()
	require.NoError(t, WithPromptConfig(filepath.Join(t.TempDir(), "config.yml"))(cfg))

	assert.Equal(t, Default(), cfg)
}

func TestApplyPromptOptions(t *testing.T) {
	cfg := Default()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	err := applyPromptOptions(cfg, PromptOptions{
		Title:    "  Thesis  ",
		Timezone: "UTC",
		Start:    "2025-03-01",
		End:      "2025-09-01",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "Thesis", cfg.Range.Title)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), cfg.Range.Start)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), cfg.Range.End)
	require.NoError(t, cfg.Validate())
}

func TestParseTick(t *testing.T) {
	cases := map[string]time.Duration{
		"16ms": 16 * time.Millisecond,
		"16":   16 * time.Millisecond,
		"1s":   time.Second,
	}

	for in, want := range cases {
		got, err := parseTick(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseTick("fast")
	assert.ErrorIs(t, err, errInvalidTickFormat)
}
