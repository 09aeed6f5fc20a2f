package logview

import (
	"github.com/charmbracelet/lipgloss"

	"lodestone/internal/app/ui/components"
)

var (
	searchMatchStyle = lipgloss.NewStyle().Reverse(true)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7D56F4")).
				Bold(true)

	continuationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))
)

// threadStyle returns a consistent palette style for a thread name
func threadStyle(thread string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(components.ThreadColor(thread)).Bold(true)
}
