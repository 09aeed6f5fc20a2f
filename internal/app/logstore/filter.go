package logstore

import (
	"strings"

	"lodestone/internal/app/gamelog"
)

// Filter is the display filter state owned by the consuming view: a set of
// enabled severities and a free-text search string. Both conditions compose
// with AND semantics; lines without a level always pass the level condition.
type Filter struct {
	enabled map[gamelog.Level]bool
	search  string
}

// NewFilter creates a filter with every severity enabled and no search text
func NewFilter() *Filter {
	enabled := make(map[gamelog.Level]bool, len(gamelog.Levels))
	for _, level := range gamelog.Levels {
		enabled[level] = true
	}

	return &Filter{enabled: enabled}
}

// SetEnabled updates the visibility of a severity
func (f *Filter) SetEnabled(level gamelog.Level, enabled bool) {
	f.enabled[level] = enabled
}

// IsEnabled returns whether a severity is currently visible
func (f *Filter) IsEnabled(level gamelog.Level) bool {
	return f.enabled[level]
}

// Toggle flips the visibility of a severity
func (f *Filter) Toggle(level gamelog.Level) {
	f.enabled[level] = !f.enabled[level]
}

// SetSearch sets the free-text filter; empty means no text filtering
func (f *Filter) SetSearch(search string) {
	f.search = search
}

// Search returns the current search string
func (f *Filter) Search() string {
	return f.search
}

// Matches reports whether a line passes both the level and text conditions.
// Level: lines without a level pass through, leveled lines need their
// severity enabled. Text: case-insensitive substring match on the raw line.
func (f *Filter) Matches(line gamelog.Line) bool {
	if line.Level != "" && !f.enabled[line.Level] {
		return false
	}

	if f.search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(line.Raw), strings.ToLower(f.search))
}
