package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Visual      key.Binding
	SelectAll   key.Binding
	ClearSel    key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Order       key.Binding
	StartUp     key.Binding
	StartDown   key.Binding
	PaddingUp   key.Binding
	PaddingDown key.Binding
	Prefix      key.Binding
	Rename      key.Binding
	Confirm     key.Binding
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select"),
		),
		Visual: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "select range"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		ClearSel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "select none"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K/shift+↑", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J/shift+↓", "move down"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle order"),
		),
		StartUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "start +1"),
		),
		StartDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "start -1"),
		),
		PaddingUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more digits"),
		),
		PaddingDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer digits"),
		),
		Prefix: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "edit prefix"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rescan"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.MoveUp, k.MoveDown, k.Order, k.Prefix, k.Rename, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Visual, k.SelectAll, k.ClearSel},
		{k.MoveUp, k.MoveDown, k.Order, k.Refresh},
		{k.StartUp, k.StartDown, k.PaddingUp, k.PaddingDown, k.Prefix},
		{k.Rename, k.Help, k.Quit},
	}
}
