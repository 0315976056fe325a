package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the dashboard reacts to.
type keyMap struct {
	Quit  key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Tab   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch"),
		),
	}
}

// listHelp and detailHelp select the bindings shown in each view's footer.
type listHelp struct{ keys keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Enter, h.keys.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type detailHelp struct{ keys keyMap }

func (h detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Tab, h.keys.Up, h.keys.Down, h.keys.Back, h.keys.Quit}
}

func (h detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

var (
	_ help.KeyMap = listHelp{}
	_ help.KeyMap = detailHelp{}
)
