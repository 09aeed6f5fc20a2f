package logview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodestone/internal/app/gamelog"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sampleLines() []gamelog.Line {
	return []gamelog.Line{
		{ID: 0, Raw: "[10:00:00] [main/INFO]: started", Timestamp: "10:00:00", Thread: "main", Level: gamelog.LevelInfo, Text: "started"},
		{ID: 1, Raw: "[10:00:01] [Server/ERROR]: crashed", Timestamp: "10:00:01", Thread: "Server", Level: gamelog.LevelError, Text: "crashed"},
		{ID: 2, Raw: "\tat Server.tick", Thread: "Server", Level: gamelog.LevelError, Text: "\tat Server.tick"},
	}
}

func Test_New(t *testing.T) {
	m := New(100)

	assert.Equal(t, 0, m.Total())
	assert.True(t, m.Autoscroll())
	assert.False(t, m.Searching())

	for _, level := range gamelog.Levels {
		assert.True(t, m.LevelEnabled(level))
	}
}

func Test_Model_Append(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)

	m.Append(sampleLines()...)

	assert.Equal(t, 3, m.Total())
	assert.Len(t, m.Visible(), 3)
}

func Test_Model_ToggleLevel(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	m.ToggleLevel(gamelog.LevelError)

	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, gamelog.LevelInfo, visible[0].Level)

	m.ToggleLevel(gamelog.LevelError)
	assert.Len(t, m.Visible(), 3)
}

func Test_Model_LevelToggleKeys(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	m.HandleKey(keyMsg("1"))
	assert.False(t, m.LevelEnabled(gamelog.LevelError))

	m.HandleKey(keyMsg("3"))
	assert.False(t, m.LevelEnabled(gamelog.LevelInfo))

	assert.Empty(t, m.Visible())
}

func Test_Model_Search(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	m.HandleKey(keyMsg("/"))
	require.True(t, m.Searching())

	for _, r := range "crash" {
		m.HandleKey(keyMsg(string(r)))
	}

	assert.Equal(t, "crash", m.SearchQuery())
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, 1, m.Visible()[0].ID)

	// Enter commits the query and returns focus to the view
	m.HandleKey(keyMsg("enter"))
	assert.False(t, m.Searching())
	assert.Equal(t, "crash", m.SearchQuery())

	// Esc outside the input clears the committed query
	m.HandleKey(keyMsg("esc"))
	assert.Empty(t, m.SearchQuery())
	assert.Len(t, m.Visible(), 3)
}

func Test_Model_SearchEscCancels(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	m.HandleKey(keyMsg("/"))
	m.HandleKey(keyMsg("x"))
	require.Empty(t, m.Visible())

	m.HandleKey(keyMsg("esc"))

	assert.False(t, m.Searching())
	assert.Empty(t, m.SearchQuery())
	assert.Len(t, m.Visible(), 3)
}

func Test_Model_SearchConsumesToggleKeys(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	m.HandleKey(keyMsg("/"))
	m.HandleKey(keyMsg("1"))

	// "1" went into the query, not the level filter
	assert.True(t, m.LevelEnabled(gamelog.LevelError))
	assert.Equal(t, "1", m.SearchQuery())
}

func Test_Model_Autoscroll(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)

	assert.True(t, m.Autoscroll())

	m.HandleKey(keyMsg("a"))
	assert.False(t, m.Autoscroll())

	m.HandleKey(keyMsg("a"))
	assert.True(t, m.Autoscroll())
}

func Test_Model_Clear(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)
	m.ToggleLevel(gamelog.LevelError)

	m.HandleKey(keyMsg("ctrl+r"))

	assert.Equal(t, 0, m.Total())
	// Filter state survives a clear
	assert.False(t, m.LevelEnabled(gamelog.LevelError))
}

func Test_Model_CapacityEviction(t *testing.T) {
	m := New(2)
	m.SetSize(80, 20)
	m.Append(sampleLines()...)

	assert.Equal(t, 2, m.Total())
	assert.Equal(t, 1, m.Visible()[0].ID, "oldest line evicted")
}

func Test_Model_View(t *testing.T) {
	m := New(100)
	m.SetSize(80, 20)

	assert.Contains(t, m.View(), "No log lines yet")

	m.Append(sampleLines()...)

	view := m.View()
	assert.Contains(t, view, "started")
	assert.Contains(t, view, "crashed")
	assert.Contains(t, view, "10:00:00")

	m.ToggleLevel(gamelog.LevelError)
	m.ToggleLevel(gamelog.LevelInfo)
	assert.Contains(t, m.View(), "filtered out")
}

func Test_levelLabel(t *testing.T) {
	assert.Equal(t, "ERROR", levelLabel(gamelog.LevelError))
	assert.Equal(t, "-", levelLabel(gamelog.Level("")))
}
