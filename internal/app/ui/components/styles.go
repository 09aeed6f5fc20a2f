package components

import (
	"github.com/charmbracelet/lipgloss"

	"lodestone/internal/app/gamelog"
)

// Common styles shared across UI components
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 1)

	// HelpKeyStyle for key names in help lines
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Bold(true)

	// HelpDescStyle for key descriptions in help lines
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// TimestampStyle for timestamp text
	TimestampStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// SeparatorStyle for line separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(2)

	// StatusStyle for status line information
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgLevelError)

	// PulseStyle for the live tail heartbeat indicator
	PulseStyle = lipgloss.NewStyle().
			Foreground(FgLevelInfo)
)

// Level styles keyed by parsed severity
var (
	LevelErrorStyle = lipgloss.NewStyle().Foreground(FgLevelError).Bold(true)
	LevelWarnStyle  = lipgloss.NewStyle().Foreground(FgLevelWarn)
	LevelInfoStyle  = lipgloss.NewStyle().Foreground(FgLevelInfo)
	LevelDebugStyle = lipgloss.NewStyle().Foreground(FgLevelDebug)
	LevelTraceStyle = lipgloss.NewStyle().Foreground(FgLevelTrace)

	levelNoneStyle = lipgloss.NewStyle().Foreground(FgMuted)
)

// LevelStyle returns the style for a parsed level. Lines without a level get
// the muted style.
func LevelStyle(level gamelog.Level) lipgloss.Style {
	switch level {
	case gamelog.LevelError:
		return LevelErrorStyle
	case gamelog.LevelWarn:
		return LevelWarnStyle
	case gamelog.LevelInfo:
		return LevelInfoStyle
	case gamelog.LevelDebug:
		return LevelDebugStyle
	case gamelog.LevelTrace:
		return LevelTraceStyle
	default:
		return levelNoneStyle
	}
}
