// Package dashboard draws the live countdown, progress bar and calendar of a
// range in the terminal
package dashboard

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/daysleft/internal/config"
	"github.com/ayoisaiah/daysleft/internal/daterange"
	"github.com/ayoisaiah/daysleft/internal/tracker"
)

const (
	padding  = 2
	maxWidth = 80
)

// tickMsg only triggers a refresh. The instant always comes from the
// tracker's clock so that a pinned clock stays pinned.
type tickMsg time.Time

// hookDoneMsg reports the outcome of the end-of-range notification and
// command.
type hookDoneMsg struct {
	err error
}

// Dashboard is the bubbletea model behind the default command.
type Dashboard struct {
	cfg      *config.Config
	tracker  *tracker.Tracker
	err      error
	notify   func(title, message string) error
	run      func(cmd string) error
	style    style
	snapshot tracker.Snapshot
	help     help.Model
	progress progress.Model
	keys     keymap
	width    int

	frozen       bool
	showCalendar bool
	hookFired    bool
}

// New returns a dashboard showing the tracker's range as of its clock.
func New(cfg *config.Config, tr *tracker.Tracker) (*Dashboard, error) {
	snap, err := tr.Tick()
	if err != nil {
		return nil, err
	}

	st := newStyle(cfg.Display.DarkTheme)

	d := &Dashboard{
		cfg:      cfg,
		tracker:  tr,
		snapshot: snap,
		style:    st,
		keys:     defaultKeymap,
		help:     help.New(),
		progress: progress.New(
			progress.WithGradient(st.gradientFrom, st.gradientTo),
			progress.WithoutPercentage(),
		),
		notify:       notify,
		run:          runCmd,
		showCalendar: cfg.Display.ShowCalendar,
		// A range that is already over when the dashboard opens does not
		// trigger the end-of-range hook.
		hookFired: snap.Stats.Ended(),
	}

	d.progress.Width = maxWidth

	return d, nil
}

// Run opens the dashboard and blocks until the user quits.
func Run(cfg *config.Config, tr *tracker.Tracker) error {
	d, err := New(cfg, tr)
	if err != nil {
		return err
	}

	p := tea.NewProgram(d, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	return d.err
}

func (d *Dashboard) Init() tea.Cmd {
	return d.tick()
}

func (d *Dashboard) tick() tea.Cmd {
	return tea.Tick(d.cfg.Display.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Snapshot returns the data currently on screen.
func (d *Dashboard) Snapshot() tracker.Snapshot {
	return d.snapshot
}

// refresh replaces the snapshot with one taken at the tracker's clock and
// returns the end-of-range hook if this refresh is the one that crossed the
// end.
func (d *Dashboard) refresh() (tea.Cmd, error) {
	snap, err := d.tracker.Tick()
	if err != nil {
		return nil, err
	}

	prev := d.snapshot
	d.snapshot = snap

	if d.hookFired || prev.Stats.Ended() || !snap.Stats.Ended() {
		return nil, nil
	}

	d.hookFired = true

	slog.Info(
		"range ended",
		slog.Time("start", snap.Range.Start),
		slog.Time("end", snap.Range.End),
	)

	return d.completionHook(), nil
}

// completionHook sends the desktop notification and runs the configured
// command. Neither touches the snapshot.
func (d *Dashboard) completionHook() tea.Cmd {
	title := d.cfg.Range.Title
	message := "The range ended on " + d.snapshot.Range.End.Format(time.RFC1123)
	notifyEnabled := d.cfg.Notifications.Enabled
	cmd := d.cfg.Settings.Cmd

	return func() tea.Msg {
		var errs []error

		if notifyEnabled {
			if err := d.notify(title, message); err != nil {
				errs = append(errs, errNotify.Wrap(err))
			}
		}

		if err := d.run(cmd); err != nil {
			errs = append(errs, errRunCmd.Fmt(cmd).Wrap(err))
		}

		return hookDoneMsg{err: errors.Join(errs...)}
	}
}

// fatal records err for Run to return and stops the program. A month outside
// 1-12 can only come from a bug, so it is logged loudly as well.
func (d *Dashboard) fatal(err error) tea.Cmd {
	d.err = err

	if errors.Is(err, daterange.ErrInvalidMonth) {
		slog.Error("calendar produced an invalid month", slog.Any("error", err))
	}

	return tea.Quit
}
