package logview

import (
	"github.com/charmbracelet/bubbles/key"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log view
type KeyMap struct {
	components.KeyMap
	Search      key.Binding
	CloseSearch key.Binding
	Autoscroll  key.Binding
	Clear       key.Binding
	Export      key.Binding
	ToggleError key.Binding
	ToggleWarn  key.Binding
	ToggleInfo  key.Binding
	ToggleDebug key.Binding
	ToggleTrace key.Binding
}

// DefaultKeyMap returns the default key bindings for the log view
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CloseSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Autoscroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscroll"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		ToggleError: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "error"),
		),
		ToggleWarn: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "warn"),
		),
		ToggleInfo: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "info"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "debug"),
		),
		ToggleTrace: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "trace"),
		),
	}
}

// LevelBindings returns the toggle bindings paired with their severities,
// in display order
func (k KeyMap) LevelBindings() []struct {
	Binding key.Binding
	Level   gamelog.Level
} {
	return []struct {
		Binding key.Binding
		Level   gamelog.Level
	}{
		{k.ToggleError, gamelog.LevelError},
		{k.ToggleWarn, gamelog.LevelWarn},
		{k.ToggleInfo, gamelog.LevelInfo},
		{k.ToggleDebug, gamelog.LevelDebug},
		{k.ToggleTrace, gamelog.LevelTrace},
	}
}

// ShortHelp returns keybindings for the mini help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Autoscroll, k.Clear, k.Export, k.Quit}
}

// FullHelp returns keybindings for the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.CloseSearch},
		{k.ToggleError, k.ToggleWarn, k.ToggleInfo, k.ToggleDebug, k.ToggleTrace},
		{k.Autoscroll, k.Clear, k.Export, k.Quit},
	}
}
