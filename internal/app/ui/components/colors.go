package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Level colors - parsed log severities
	FgLevelError = lipgloss.Color("9")  // Red
	FgLevelWarn  = lipgloss.Color("11") // Yellow
	FgLevelInfo  = lipgloss.Color("10") // Green
	FgLevelDebug = lipgloss.Color("12") // Blue
	FgLevelTrace = lipgloss.Color("8")  // Gray
)

// SeparatorColor is the adaptive color for line separators
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// ThreadColorPalette provides distinct colors for thread names
var ThreadColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#0d9488", Dark: "#2dd4bf"}, // Teal
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
	{Light: "#4f46e5", Dark: "#818cf8"}, // Indigo
	{Light: "#0284c7", Dark: "#38bdf8"}, // Sky
	{Light: "#b45309", Dark: "#fcd34d"}, // Gold
}

// ThreadColor returns a consistent palette color for a thread name
func ThreadColor(thread string) lipgloss.AdaptiveColor {
	return ThreadColorPalette[hashString(thread)%len(ThreadColorPalette)]
}

// hashString returns a simple hash of a string
func hashString(s string) int {
	h := 0
	for _, c := range s {
		h = 31*h + int(c)
	}

	if h < 0 {
		h = -h
	}

	return h
}
