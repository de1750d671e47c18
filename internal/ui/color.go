// Package ui holds terminal colour and table helpers for one-shot commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/daysleft/internal/daycolor"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Gray(a any) string {
	return pterm.Gray(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Day renders a in the colour of the day.
func Day(c daycolor.Color, a any) string {
	return pterm.NewRGB(c.R, c.G, c.B).Sprint(a)
}
