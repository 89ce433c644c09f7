package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Start      key.Binding
	SkipTurn   key.Binding
	Submit     key.Binding
	SkipInput  key.Binding
	NextBranch key.Binding
	PrevBranch key.Binding
	Choose     key.Binding
	Quit       key.Binding
}

var DefaultKeyMap = KeyMap{
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	SkipTurn: key.NewBinding(
		key.WithKeys(" ", "tab"),
		key.WithHelp("space", "skip turn"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "say it"),
	),
	SkipInput: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stay silent"),
	),
	NextBranch: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "next choice"),
	),
	PrevBranch: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "previous choice"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SkipTurn, k.Submit, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.SkipTurn, k.Quit},
		{k.Submit, k.SkipInput},
		{k.PrevBranch, k.NextBranch, k.Choose},
	}
}
