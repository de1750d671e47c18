package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/daysleft/internal/timeutil"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Title    string
	Timezone string
	Start    string
	End      string
}

// WithPromptConfig returns an Option that asks for the range interactively
// the first time daysleft runs. It does nothing when the config file exists
// or stdin is not a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !interactive() {
			return nil
		}

		opts, err := promptUser(c)
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts, time.Now())
	}
}

func interactive() bool {
	f, ok := Stdin.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptUser handles the interactive configuration process. Answers start
// out as the current values so that ENTER keeps them.
func promptUser(c *Config) (PromptOptions, error) {
	opts := PromptOptions{
		Title:    c.Range.Title,
		Timezone: c.Range.Timezone,
		Start:    c.Range.Start.Format(time.RFC3339),
		End:      c.Range.End.Format(time.RFC3339),
	}

	_ = pterm.DefaultBigText.WithLetters(putils.LettersFromString("daysleft")).
		Render()

	_ = putils.BulletListFromString(`Follow the prompts below to configure daysleft for the first time.
Dates accept YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC 3339 or phrases like 'next friday'.
Edit the config file with 'daysleft edit-config' to change any settings.`, " ").
		Render()

	validDate := func(s string) error {
		loc, err := timeutil.LoadLocation(opts.Timezone)
		if err != nil {
			return err
		}

		_, err = timeutil.FromStr(s, time.Now(), loc)

		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you counting down to?").
				Value(&opts.Title),
			huh.NewInput().
				Title("Timezone").
				Description("An IANA zone name such as Europe/Berlin").
				Validate(func(s string) error {
					_, err := timeutil.LoadLocation(s)
					return err
				}).
				Value(&opts.Timezone),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Validate(validDate).
				Value(&opts.Start),
			huh.NewInput().
				Title("End date").
				Validate(validDate).
				Value(&opts.End),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions, now time.Time) error {
	if title := strings.TrimSpace(opts.Title); title != "" {
		c.Range.Title = title
	}

	return applyCLIOptions(c, CLIOptions{
		Timezone: strings.TrimSpace(opts.Timezone),
		Start:    opts.Start,
		End:      opts.End,
	}, now)
}
