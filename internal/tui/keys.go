package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Format  key.Binding
	Enter   key.Binding
	Confirm key.Binding
	Reset   key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev option")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Format:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "format")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/insert")),
		Confirm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "insert")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Left, k.Right, k.Format, k.Confirm, k.Reset, k.Cancel}
}
