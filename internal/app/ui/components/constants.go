package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for the log view
	UITickInterval = 100 * time.Millisecond

	// Derived FPS for animations (ticks per second)
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Log view layout constants
const (
	DefaultViewportWidth = 80
	ThreadNameMaxWidth   = 15
	MessageMinWidth      = 20
	HeaderHeight         = 2
	FooterHeight         = 2
)
