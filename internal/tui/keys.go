package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rotate    key.Binding
	Zoom      key.Binding
	Backside  key.Binding
	Graticule key.Binding
	Spin      key.Binding
	Stats     key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rotate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("↑↓←→", "rotate"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("+", "=", "-", "_"),
			key.WithHelp("+/-", "zoom"),
		),
		Backside: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "backside"),
		),
		Graticule: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "graticule"),
		),
		Spin: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spin"),
		),
		Stats: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Zoom, k.Backside, k.Graticule, k.Spin, k.Stats, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.Zoom, k.Reset},
		{k.Backside, k.Graticule, k.Spin},
		{k.Stats, k.Help, k.Quit},
	}
}
