package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Increment key.Binding
	Decrement key.Binding
	Custom    key.Binding
	SetCount  key.Binding
	Add       key.Binding
	Edit      key.Binding
	Reset     key.Binding
	Delete    key.Binding
	Undo      key.Binding
	Select    key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Filter    key.Binding
	Stats     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
	MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
	Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
	Custom:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add amount")),
	SetCount:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "set count")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add counter")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
	Select:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "selection mode")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle select")),
	SelectAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "select all")),
	Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Stats:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
