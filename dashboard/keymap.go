package dashboard

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	freeze   key.Binding
	calendar key.Binding
	help     key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	freeze: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "freeze/resume"),
	),
	calendar: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle calendar"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.freeze, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.freeze, k.calendar},
		{k.help, k.quit},
	}
}
