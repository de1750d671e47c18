// Package app wires the daysleft command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/daysleft/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the daysleft app instance.
func Get() *cli.App {
	daysleftApp := &cli.App{
		Name: "daysleft",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		daysleft counts down a date range in the terminal. It shows how much of
		the range is gone, what is left down to the millisecond, and a calendar
		of every month the range covers.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the progress of the range once",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "calendar",
				Usage:  "Print every month covered by the range",
				Flags:  []cli.Flag{jsonFlag},
				Action: calendarAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the calendar and progress as a web page",
				Flags:  []cli.Flag{portFlag, openFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			startFlag,
			endFlag,
			timezoneFlag,
			titleFlag,
			atFlag,
			tickFlag,
			disableNotificationFlag,
			noCalendarFlag,
			cmdFlag,
			noColorFlag,
			verboseFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return daysleftApp
}
