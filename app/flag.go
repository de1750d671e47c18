package app

import "github.com/urfave/cli/v2"

var (
	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start of the range: YYYY-MM-DD [HH:MM], RFC 3339 or a phrase such as 'last monday'",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "End of the range: YYYY-MM-DD [HH:MM], RFC 3339 or a phrase such as 'in 3 months'",
	}

	timezoneFlag = &cli.StringFlag{
		Name:    "timezone",
		Aliases: []string{"tz"},
		Usage:   "IANA timezone the calendar is drawn in (e.g. Europe/Berlin)",
	}

	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "Label shown above the countdown",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Show the range as it is at this instant instead of now",
	}

	tickFlag = &cli.StringFlag{
		Name:  "tick",
		Usage: "Dashboard refresh interval (e.g. 16ms, 1s). Bare numbers are milliseconds",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when the range ends",
	}

	noCalendarFlag = &cli.BoolFlag{
		Name:  "no-calendar",
		Usage: "Hide the calendar on the dashboard",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when the range ends",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Write debug records to the log file",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Port for the web server (default: server.port from the config file)",
	}

	openFlag = &cli.BoolFlag{
		Name:  "open",
		Usage: "Open the page in the default browser",
	}
)
