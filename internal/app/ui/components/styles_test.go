package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"lodestone/internal/app/gamelog"
)

func Test_LevelStyle(t *testing.T) {
	tests := []struct {
		name     string
		level    gamelog.Level
		expected lipgloss.Style
	}{
		{name: "Error", level: gamelog.LevelError, expected: LevelErrorStyle},
		{name: "Warn", level: gamelog.LevelWarn, expected: LevelWarnStyle},
		{name: "Info", level: gamelog.LevelInfo, expected: LevelInfoStyle},
		{name: "Debug", level: gamelog.LevelDebug, expected: LevelDebugStyle},
		{name: "Trace", level: gamelog.LevelTrace, expected: LevelTraceStyle},
		{name: "No level", level: gamelog.Level(""), expected: levelNoneStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelStyle(tt.level))
		})
	}
}

func Test_ThreadColor_Consistency(t *testing.T) {
	assert.Equal(t, ThreadColor("Render thread"), ThreadColor("Render thread"))
}

func Test_hashString(t *testing.T) {
	assert.Equal(t, 0, hashString(""))
	assert.GreaterOrEqual(t, hashString("Server thread"), 0)
	assert.Equal(t, hashString("main"), hashString("main"))
}
