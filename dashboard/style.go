package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/daysleft/internal/daycolor"
)

type style struct {
	base       lipgloss.Style
	title      lipgloss.Style
	main       lipgloss.Style
	secondary  lipgloss.Style
	hint       lipgloss.Style
	weekdays   lipgloss.Style
	monthTitle lipgloss.Style
	monthBox   lipgloss.Style
	pastYear   lipgloss.Style
	year       lipgloss.Style
	elapsed    lipgloss.Style
	remaining  lipgloss.Style

	// cell is the unfilled background of the current day.
	cell daycolor.Color

	gradientFrom string
	gradientTo   string
}

func newStyle(dark bool) style {
	fg, dim, accent := "#EEEEEE", "#6C6C6C", "#B0DB43"
	cell := daycolor.Color{R: 0x30, G: 0x30, B: 0x30}

	if !dark {
		fg, dim, accent = "#1C1C1C", "#9E9E9E", "#4E7A0C"
		cell = daycolor.Color{R: 0xE4, G: 0xE4, B: 0xE4}
	}

	return style{
		base:       lipgloss.NewStyle().Padding(1, padding),
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		main:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fg)),
		secondary:  lipgloss.NewStyle().Foreground(lipgloss.Color(fg)),
		hint:       lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		weekdays:   lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Bold(true),
		monthTitle: lipgloss.NewStyle().Bold(true).Width(monthWidth).Align(lipgloss.Center),
		monthBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dim)).
			Padding(0, 1),
		year:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		pastYear:     lipgloss.NewStyle().Bold(true).Strikethrough(true).Foreground(lipgloss.Color(dim)),
		elapsed:      lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Strikethrough(true),
		remaining:    lipgloss.NewStyle().Foreground(lipgloss.Color(fg)),
		cell:         cell,
		gradientFrom: "#5A56E0",
		gradientTo:   accent,
	}
}

// today styles the current day cell: the day's colour fills the cell by the
// share of the day already gone.
func (s style) today(c daycolor.Color, fraction float64) lipgloss.Style {
	bg := c.Fill(s.cell, fraction)

	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(bg.Foreground().Hex()))
}
