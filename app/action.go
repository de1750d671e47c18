package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/daysleft/dashboard"
	"github.com/ayoisaiah/daysleft/internal/calendar"
	"github.com/ayoisaiah/daysleft/internal/config"
	"github.com/ayoisaiah/daysleft/internal/osutil"
	"github.com/ayoisaiah/daysleft/internal/pathutil"
	"github.com/ayoisaiah/daysleft/internal/timeutil"
	"github.com/ayoisaiah/daysleft/internal/tracker"
	"github.com/ayoisaiah/daysleft/internal/ui"
	"github.com/ayoisaiah/daysleft/server"
)

const (
	envUpdateNotifier  = "DAYSLEFT_UPDATE_NOTIFIER"
	envNoColor         = "NO_COLOR"
	envDaysleftNoColor = "DAYSLEFT_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of daysleft from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/daysleft/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/daysleft/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of daysleft is available: %s at %s", version, resp.Request.URL.String())
	}
}

// loadConfig merges the first-run prompt, the config file and the flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded",
		slog.String("path", configPath),
		slog.String("config", spew.Sdump(cfg)),
	)

	return cfg, nil
}

// newTracker builds the tracker for cfg. With --at the clock is pinned to
// that instant.
func newTracker(ctx *cli.Context, cfg *config.Config) (*tracker.Tracker, error) {
	r, err := cfg.DateRange()
	if err != nil {
		return nil, err
	}

	var opts []tracker.Option

	if at := ctx.String("at"); at != "" {
		t, err := timeutil.FromStr(at, time.Now(), r.Location())
		if err != nil {
			return nil, err
		}

		opts = append(opts, tracker.WithClock(func() time.Time { return t }))
	}

	return tracker.New(r, opts...)
}

func setup(ctx *cli.Context) (*config.Config, *tracker.Tracker, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	tr, err := newTracker(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, tr, nil
}

func printJSON(ctx *cli.Context, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, string(b))

	return err
}

// statusAction handles the status command and prints the progress of the
// range once.
func statusAction(ctx *cli.Context) error {
	cfg, tr, err := setup(ctx)
	if err != nil {
		return err
	}

	snap, err := tr.Tick()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(ctx, snap.Stats)
	}

	st := snap.Stats
	w := ctx.App.Writer

	fmt.Fprintln(w, ui.Highlight(cfg.Range.Title))
	fmt.Fprintln(w, ui.Day(snap.Today, st.Heading()))
	fmt.Fprintln(w, st.DayLine())
	countdown := ui.Green(st.Countdown())
	if st.Ended() {
		countdown = ui.Red(st.Countdown())
	}

	fmt.Fprintln(w, countdown+" (HH:MM:SS.mmm)")
	fmt.Fprintln(w, ui.Cyan(st.PercentString()))

	return nil
}

// calendarAction handles the calendar command and prints a table of every
// month the range covers.
func calendarAction(ctx *cli.Context) error {
	_, tr, err := setup(ctx)
	if err != nil {
		return err
	}

	snap, err := tr.Tick()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(ctx, snap.Calendar)
	}

	tableBody := [][]string{
		{
			"YEAR",
			"MONTH",
			"DURATION",
			"COMPLETION",
			"COUNTED",
			"ELAPSED",
			"REMAINING",
		},
	}

	for _, m := range snap.Calendar.Months() {
		completion := m.Completion.String()

		switch m.Completion.State {
		case calendar.StatePartial:
			completion = ui.Green(completion)
		case calendar.StateCompleted:
			completion = ui.Gray(completion)
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(m.Year),
			m.Name(),
			m.Duration.String(),
			completion,
			strconv.Itoa(m.CountedDays()),
			strconv.Itoa(m.ElapsedDays()),
			strconv.Itoa(m.RemainingDays()),
		})
	}

	ui.PrintTable(tableBody, ctx.App.Writer)

	return nil
}

// serveAction handles the serve command and serves the web page until
// interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, tr, err := setup(ctx)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, tr)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(sigCtx, ctx.Bool("open"))
}

// editConfigAction handles the edit-config command which opens the daysleft
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// Loading writes the default file when it is missing.
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction opens the live dashboard.
func defaultAction(ctx *cli.Context) error {
	cfg, tr, err := setup(ctx)
	if err != nil {
		return err
	}

	return dashboard.Run(cfg, tr)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/daysleft/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if DAYSLEFT_NO_COLOR is set
	if _, exists := os.LookupEnv(envDaysleftNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return initLogger(pathutil.LogFilePath(), ctx.Bool("verbose"))
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting daysleft")

	return nil
}
