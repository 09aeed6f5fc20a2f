package cli

import (
	"github.com/charmbracelet/lipgloss"

	"lodestone/internal/config"
)

var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	bodyText      = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	errorText     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44336"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))

	statusRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderTitle renders the app title block with name, version and description
func renderTitle() string {
	title := appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version)

	return lipgloss.JoinVertical(lipgloss.Left, title, mutedText.Render(config.AppDescription))
}
