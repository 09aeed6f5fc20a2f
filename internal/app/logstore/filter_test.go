package logstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodestone/internal/app/gamelog"
)

func Test_NewFilter(t *testing.T) {
	filter := NewFilter()

	for _, level := range gamelog.Levels {
		assert.True(t, filter.IsEnabled(level))
	}

	assert.Empty(t, filter.Search())
}

func Test_Filter_LevelExactness(t *testing.T) {
	filter := NewFilter()
	filter.SetEnabled(gamelog.LevelError, false)
	filter.SetEnabled(gamelog.LevelInfo, true)

	tests := []struct {
		name     string
		line     gamelog.Line
		expected bool
	}{
		{name: "Disabled level excluded", line: gamelog.Line{Raw: "x", Level: gamelog.LevelError}, expected: false},
		{name: "Enabled level included", line: gamelog.Line{Raw: "x", Level: gamelog.LevelInfo}, expected: true},
		{name: "No level passes through", line: gamelog.Line{Raw: "x"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Matches(tt.line))
		})
	}
}

func Test_Filter_Toggle(t *testing.T) {
	filter := NewFilter()

	filter.Toggle(gamelog.LevelDebug)
	assert.False(t, filter.IsEnabled(gamelog.LevelDebug))

	filter.Toggle(gamelog.LevelDebug)
	assert.True(t, filter.IsEnabled(gamelog.LevelDebug))
}

func Test_Filter_TextCaseInsensitive(t *testing.T) {
	filter := NewFilter()
	filter.SetSearch("xyz")

	assert.True(t, filter.Matches(gamelog.Line{Raw: "Loading Mod XYZ"}))
	assert.False(t, filter.Matches(gamelog.Line{Raw: "Loading Mod ABC"}))
}

func Test_Filter_EmptySearchMatchesAll(t *testing.T) {
	filter := NewFilter()
	filter.SetSearch("")

	assert.True(t, filter.Matches(gamelog.Line{Raw: "anything"}))
	assert.True(t, filter.Matches(gamelog.Line{Raw: ""}))
}

func Test_Filter_SearchOnRawNotText(t *testing.T) {
	filter := NewFilter()
	filter.SetSearch("main/info")

	line := gamelog.Line{
		Raw:   "[10:00:00] [main/INFO]: started",
		Text:  "started",
		Level: gamelog.LevelInfo,
	}

	assert.True(t, filter.Matches(line), "search applies to the raw line, not the extracted message")
}

func Test_Filter_CombinedConditions(t *testing.T) {
	filter := NewFilter()
	filter.SetEnabled(gamelog.LevelError, false)
	filter.SetSearch("memory")

	tests := []struct {
		name     string
		line     gamelog.Line
		expected bool
	}{
		{name: "Passes both", line: gamelog.Line{Raw: "low Memory warning", Level: gamelog.LevelWarn}, expected: true},
		{name: "Fails level", line: gamelog.Line{Raw: "out of memory", Level: gamelog.LevelError}, expected: false},
		{name: "Fails text", line: gamelog.Line{Raw: "all good", Level: gamelog.LevelWarn}, expected: false},
		{name: "Fails both", line: gamelog.Line{Raw: "all good", Level: gamelog.LevelError}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Matches(tt.line))
		})
	}
}
