package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding

	Submit key.Binding
	Leave  key.Binding

	Save   key.Binding
	Cancel key.Binding
	Undo   key.Binding
	Prev   key.Binding
	Next   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:  key.NewBinding(key.WithKeys("tab", "esc", "down"), key.WithHelp("tab", "list")),

		Save:   key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Prev:   key.NewBinding(key.WithKeys("up")),
		Next:   key.NewBinding(key.WithKeys("down")),
	}
}

// listHelp is appended to the list's own short/full help.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help}
}
