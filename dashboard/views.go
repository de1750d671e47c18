package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/daysleft/internal/calendar"
	"github.com/ayoisaiah/daysleft/internal/daycolor"
	"github.com/ayoisaiah/daysleft/internal/timeutil"
)

// monthWidth is the width of a week row: seven two-digit cells and six gaps.
const monthWidth = 20

const weekdayHeader = "Mo Tu We Th Fr Sa Su"

func (d *Dashboard) statsView() string {
	var s strings.Builder

	st := d.snapshot.Stats

	s.WriteString(d.style.title.Render(d.cfg.Range.Title))
	s.WriteString("\n\n")
	s.WriteString(d.style.main.Render(st.Heading()))
	s.WriteString("\n")
	s.WriteString(d.style.secondary.Render(st.DayLine()))
	s.WriteString("\n\n")
	s.WriteString(d.style.main.Render(st.Countdown()))
	s.WriteString(d.style.hint.Render(" (HH:MM:SS.mmm)"))
	s.WriteString("\n")
	s.WriteString(d.style.secondary.Render(st.PercentString()))
	s.WriteString("\n\n")
	s.WriteString(d.progress.ViewAs(st.Fraction()))
	s.WriteString("\n\n")

	end := timeutil.Format(d.snapshot.Range.End, d.cfg.Display.TwentyFourHour)

	if d.frozen {
		s.WriteString(d.style.secondary.Render("[Frozen]"))
	} else {
		s.WriteString(d.style.hint.Render(
			fmt.Sprintf("ends %s (%s)", st.EndsIn(), end),
		))
	}

	return s.String()
}

func (d *Dashboard) calendarView() string {
	perRow := 4
	if d.width > 0 {
		perRow = max(1, (d.width-padding*2)/(monthWidth+4))
	}

	var blocks []string

	for _, y := range d.snapshot.Calendar {
		heading := d.style.year
		if y.Completed() {
			heading = d.style.pastYear
		}

		blocks = append(blocks, heading.Render(fmt.Sprintf("%d", y.Year)))

		for i := 0; i < len(y.Months); i += perRow {
			row := make([]string, 0, perRow)

			for _, m := range y.Months[i:min(i+perRow, len(y.Months))] {
				row = append(row, d.monthView(m))
			}

			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// monthView lays out the counted days of m in a Monday-first grid.
func (d *Dashboard) monthView(m calendar.Month) string {
	lines := []string{
		d.style.monthTitle.Render(fmt.Sprintf("%s %d", m.Name(), m.Year)),
		d.style.weekdays.Render(weekdayHeader),
	}

	cells := make([]string, 0, 42)

	for range m.GridPadding() {
		cells = append(cells, "  ")
	}

	first := m.FirstCountedDay()
	for day := first; day < first+m.CountedDays(); day++ {
		cells = append(cells, d.dayCell(m, day))
	}

	for i := 0; i < len(cells); i += 7 {
		lines = append(lines, strings.Join(cells[i:min(i+7, len(cells))], " "))
	}

	return d.style.monthBox.Render(strings.Join(lines, "\n"))
}

func (d *Dashboard) dayCell(m calendar.Month, day int) string {
	text := fmt.Sprintf("%2d", day)
	at := d.snapshot.At

	if m.Current() && day == at.Day() {
		return d.style.today(d.snapshot.Today, daycolor.DayFraction(at)).Render(text)
	}

	switch m.DayState(day) {
	case calendar.DayElapsed:
		return d.style.elapsed.Render(text)
	case calendar.DayRemaining:
		return d.style.remaining.Render(text)
	}

	return "  "
}

func (d *Dashboard) View() string {
	if d.err != nil {
		return ""
	}

	sections := []string{d.statsView()}

	if d.showCalendar {
		sections = append(sections, d.calendarView())
	}

	sections = append(sections, d.help.View(d.keys))

	return d.style.base.Render(strings.Join(sections, "\n\n"))
}
