package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"tabsview/internal/tabs"
)

// keyMap holds the demo's own shortcuts next to the tab shortcuts.
type keyMap struct {
	Position  key.Binding
	Keyboard  key.Binding
	Animation key.Binding
	Focus     key.Binding
	Blur      key.Binding
	Logs      key.Binding
	Quit      key.Binding

	Tabs tabs.KeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Position: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "move bar"),
		),
		Keyboard: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "ignore keyboard"),
		),
		Animation: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation"),
		),
		Focus: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "type"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide keyboard"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Tabs: tabs.DefaultKeyMap(),
	}
}

// bindings returns the shortcuts that apply while the text field is
// focused or not.
func (k keyMap) bindings(typing bool) []key.Binding {
	if typing {
		return []key.Binding{k.Blur, k.Tabs.Next, k.Tabs.Prev}
	}
	return []key.Binding{
		k.Tabs.Next, k.Tabs.Prev, k.Tabs.Jump,
		k.Focus, k.Position, k.Keyboard, k.Animation, k.Logs, k.Quit,
	}
}
