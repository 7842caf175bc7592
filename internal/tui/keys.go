package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Add      key.Binding
	Check    key.Binding
	Trash    key.Binding
	Select   key.Binding
	Restore  key.Binding
	Delete   key.Binding
	Empty    key.Binding
	Save     key.Binding
	Notes    key.Binding
	Contacts key.Binding
	TrashBin key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
	Refresh  key.Binding
	Yes      key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field/pane")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new")),
	Check:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "check off")),
	Trash:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "move to trash")),
	Select:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Restore:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
	Delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete forever")),
	Empty:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "empty trash")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Notes:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "notes")),
	Contacts: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "contacts")),
	TrashBin: key.NewBinding(key.WithKeys("3", "t"), key.WithHelp("3/t", "trash")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
	Yes:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
}
