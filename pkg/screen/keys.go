package screen

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/marcus/pdp/internal/catalog"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Direct  key.Binding
	Confirm key.Binding
	Info    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap(l catalog.Labels) keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", l.PrevSize),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", l.NextSize),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", l.Choose),
		),
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", l.ChooseNth),
		),
		Confirm: key.NewBinding(
			key.WithKeys("a", "c"),
			key.WithHelp("a", l.Confirm),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", l.Info),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", l.MoreKeys),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", l.Quit),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Direct},
		{k.Confirm, k.Info},
		{k.Help, k.Quit},
	}
}
