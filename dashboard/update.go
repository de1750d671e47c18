package dashboard

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTick refreshes the snapshot unless the display is frozen and
// schedules the next tick.
func (d *Dashboard) handleTick() (tea.Model, tea.Cmd) {
	if d.frozen {
		return d, d.tick()
	}

	hook, err := d.refresh()
	if err != nil {
		return d, d.fatal(err)
	}

	if hook != nil {
		return d, tea.Batch(d.tick(), hook)
	}

	return d, d.tick()
}

func (d *Dashboard) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.quit):
		return d, tea.Quit

	case key.Matches(msg, d.keys.freeze):
		d.frozen = !d.frozen

	case key.Matches(msg, d.keys.calendar):
		d.showCalendar = !d.showCalendar

	case key.Matches(msg, d.keys.help):
		d.help.ShowAll = !d.help.ShowAll
	}

	return d, nil
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return d.handleTick()

	case hookDoneMsg:
		if msg.err != nil {
			slog.Error("end of range hook failed", slog.Any("error", msg.err))
		}

		return d, nil

	case tea.KeyMsg:
		return d.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		d.width = msg.Width

		d.progress.Width = msg.Width - padding*2 - 4
		if d.progress.Width > maxWidth {
			d.progress.Width = maxWidth
		}

		d.help.Width = msg.Width

		return d, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := d.progress.Update(msg)
		d.progress, _ = progressModel.(progress.Model)

		return d, cmd
	}

	return d, nil
}
