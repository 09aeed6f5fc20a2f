package logview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/logstore"
)

// Model is the interactive log view. It owns the bounded line store and the
// display filter; every filter change re-derives the viewport content from
// the store, so toggles and searches are always reversible.
type Model struct {
	store      *logstore.Store
	filter     *logstore.Filter
	viewport   viewport.Model
	search     textinput.Model
	keys       KeyMap
	searching  bool
	autoscroll bool
	width      int
	height     int
}

// New creates a log view backed by a store of the given capacity
func New(capacity int) Model {
	search := textinput.New()
	search.Prompt = "/"
	search.PromptStyle = searchPromptStyle
	search.Placeholder = "search"
	search.CharLimit = 120

	return Model{
		store:      logstore.NewStore(capacity),
		filter:     logstore.NewFilter(),
		viewport:   viewport.New(0, 0),
		search:     search,
		keys:       DefaultKeyMap(),
		autoscroll: true,
	}
}

// Append adds parsed lines to the store and refreshes the viewport
func (m *Model) Append(lines ...gamelog.Line) {
	m.store.Append(lines...)
	m.updateContent()
}

// Clear drops all stored lines, keeping filter and autoscroll state
func (m *Model) Clear() {
	m.store.Clear()
	m.updateContent()
}

// ToggleLevel flips the visibility of a severity
func (m *Model) ToggleLevel(level gamelog.Level) {
	m.filter.Toggle(level)
	m.updateContent()
}

// LevelEnabled returns whether a severity is currently visible
func (m Model) LevelEnabled(level gamelog.Level) bool {
	return m.filter.IsEnabled(level)
}

// Visible returns the currently visible lines, for export
func (m Model) Visible() []gamelog.Line {
	return m.store.Visible(m.filter)
}

// Total returns the number of retained lines before filtering
func (m Model) Total() int {
	return m.store.Len()
}

// SearchQuery returns the active search string
func (m Model) SearchQuery() string {
	return m.filter.Search()
}

// Searching returns whether the search input currently has focus
func (m Model) Searching() bool {
	return m.searching
}

// Autoscroll returns the current autoscroll state
func (m Model) Autoscroll() bool {
	return m.autoscroll
}

// ToggleAutoscroll toggles autoscroll mode
func (m *Model) ToggleAutoscroll() {
	m.autoscroll = !m.autoscroll
	if m.autoscroll {
		m.viewport.GotoBottom()
	}
}

// SetSize updates the viewport dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.search.Width = width - 4
	m.updateContent()
}

// HandleKey processes keyboard input. While the search input has focus all
// printable keys feed the query; otherwise keys drive toggles and scrolling.
func (m *Model) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.filter.Search())
		m.search.CursorEnd()

		return m.search.Focus()

	case key.Matches(msg, m.keys.CloseSearch):
		if m.filter.Search() != "" {
			m.filter.SetSearch("")
			m.search.SetValue("")
			m.updateContent()
		}

		return nil

	case key.Matches(msg, m.keys.Autoscroll):
		m.ToggleAutoscroll()

		return nil

	case key.Matches(msg, m.keys.Clear):
		m.Clear()

		return nil
	}

	for _, lb := range m.keys.LevelBindings() {
		if key.Matches(msg, lb.Binding) {
			m.ToggleLevel(lb.Level)

			return nil
		}
	}

	return m.handleScrollKey(msg)
}

// handleSearchKey routes keys to the search input; every change narrows the
// visible lines immediately
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter.SetSearch("")
		m.updateContent()

		return nil

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()

		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != m.filter.Search() {
		m.filter.SetSearch(m.search.Value())
		m.updateContent()
	}

	return cmd
}

// handleScrollKey forwards scrolling to the viewport, dropping out of
// autoscroll when the user moves away from the bottom
func (m *Model) handleScrollKey(msg tea.KeyMsg) tea.Cmd {
	oldYOffset := m.viewport.YOffset

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if m.viewport.YOffset != oldYOffset && m.autoscroll && !m.viewport.AtBottom() {
		m.autoscroll = false
	}

	return cmd
}

// updateContent rebuilds the viewport from the filtered store, preserving
// the scroll position unless autoscrolling
func (m *Model) updateContent() {
	oldYOffset := m.viewport.YOffset

	m.viewport.SetContent(m.renderLines(m.store.Visible(m.filter)))

	if m.autoscroll {
		m.viewport.GotoBottom()

		return
	}

	maxYOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxYOffset < 0 {
		maxYOffset = 0
	}

	if oldYOffset > maxYOffset {
		m.viewport.YOffset = maxYOffset
	} else {
		m.viewport.YOffset = oldYOffset
	}
}
