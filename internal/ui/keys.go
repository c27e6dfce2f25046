package ui

import (
	"dd-commander/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap is the browser's key surface.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Open    key.Binding
	Help    key.Binding
	Menu    key.Binding
	View    key.Binding
	Edit    key.Binding
	Copy    key.Binding
	Move    key.Binding
	MkDir   key.Binding
	Delete  key.Binding
	Quit    key.Binding
	Swap    key.Binding
	Refresh key.Binding
	CmdLine key.Binding
	Abort   key.Binding
}

// DefaultKeyMap mirrors the classic two-panel commander layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Switch")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open/Exec")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Help")),
		Menu:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "Menu")),
		View:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "View")),
		Edit:    key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "Edit")),
		Copy:    key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "Copy")),
		Move:    key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "Move/Rename")),
		MkDir:   key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "MkDir")),
		Delete:  key.NewBinding(key.WithKeys("f8"), key.WithHelp("F8", "Delete")),
		Quit:    key.NewBinding(key.WithKeys("f10"), key.WithHelp("F10", "Quit")),
		Swap:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("Ctrl+U", "Swap")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("Ctrl+R", "Refresh")),
		CmdLine: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "CmdLine")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	}
}

// ShortHelp is the legend shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Help, k.Menu, k.View, k.Edit, k.Copy, k.Move, k.MkDir, k.Delete,
		k.Quit, k.Switch, k.Open, k.Swap, k.Refresh, k.CmdLine,
	}
}

// FullHelp groups bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Open, k.Swap, k.Refresh},
		{k.Help, k.Menu, k.View, k.Edit, k.Copy, k.Move, k.MkDir, k.Delete},
		{k.CmdLine, k.Quit, k.Abort},
	}
}

// actionFor maps F2..F8 and Ctrl+O onto external actions.
func (k KeyMap) actionFor(msg tea.KeyMsg) (nav.Action, bool) {
	bindings := []struct {
		b key.Binding
		a nav.Action
	}{
		{k.Menu, nav.ActionMenu},
		{k.View, nav.ActionView},
		{k.Edit, nav.ActionEdit},
		{k.Copy, nav.ActionCopy},
		{k.Move, nav.ActionMove},
		{k.MkDir, nav.ActionMkDir},
		{k.Delete, nav.ActionDelete},
		{k.CmdLine, nav.ActionCommandLine},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.a, true
		}
	}
	return 0, false
}
