package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/ui/components"
	"lodestone/internal/app/ui/logview"
	"lodestone/internal/config"
)

type linesMsg []gamelog.Line

type streamClosedMsg struct{}

type tickMsg time.Time

type exportResultMsg struct {
	url string
	err error
}

// rootModel is the top-level Bubble Tea model: a log view plus the header,
// footer and live-stream plumbing around it
type rootModel struct {
	opts    Options
	logview logview.Model
	keys    logview.KeyMap
	pulse   *components.Pulse
	tailing bool
	status  string
	width   int
	height  int
}

func newRootModel(cfg *config.Config, opts Options) rootModel {
	lv := logview.New(cfg.Store.Capacity)
	lv.Append(opts.Initial...)

	pulse := components.NewPulse()
	if opts.Tailing {
		pulse.Start()
	}

	return rootModel{
		opts:    opts,
		logview: lv,
		keys:    logview.DefaultKeyMap(),
		pulse:   pulse,
		tailing: opts.Tailing,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		waitForLines(m.opts.Updates),
		tick(),
		tea.WindowSize(),
	)
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logview.SetSize(msg.Width, msg.Height-components.HeaderHeight-components.FooterHeight)

		return m, nil

	case linesMsg:
		m.logview.Append(msg...)

		return m, waitForLines(m.opts.Updates)

	case streamClosedMsg:
		m.tailing = false
		m.pulse.Stop()
		m.status = "stream ended"

		return m, nil

	case tickMsg:
		m.pulse.Update()

		return m, tick()

	case exportResultMsg:
		if msg.err != nil {
			m.status = components.ErrorStyle.Render(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.status = "exported to " + msg.url
		}

		return m, nil
	}

	return m, nil
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if !m.logview.Searching() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Export):
			return m, m.export()
		}
	}

	return m, m.logview.HandleKey(msg)
}

// export publishes the currently visible lines in the background
func (m *rootModel) export() tea.Cmd {
	if m.opts.Export == nil {
		return nil
	}

	lines := m.logview.Visible()
	m.status = "exporting…"

	return func() tea.Msg {
		url, err := m.opts.Export(context.Background(), lines)

		return exportResultMsg{url: url, err: err}
	}
}

func (m rootModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.logview.View())
	b.WriteString("\n\n")
	b.WriteString(m.footerView())

	return b.String()
}

// headerView renders the title, the tail heartbeat, line counts and the
// level filter summary
func (m rootModel) headerView() string {
	var parts []string

	if m.tailing {
		parts = append(parts, m.pulse.Render(components.PulseStyle))
	}

	parts = append(parts, components.TitleStyle.Render(m.opts.Title))
	parts = append(parts, components.StatusStyle.Render(
		fmt.Sprintf("%d/%d lines", len(m.logview.Visible()), m.logview.Total())))

	if summary := m.levelSummary(); summary != "" {
		parts = append(parts, components.StatusStyle.Render(summary))
	}

	if m.status != "" {
		parts = append(parts, components.StatusStyle.Render(m.status))
	}

	return " " + strings.Join(parts, components.SeparatorStyle.Render(" · "))
}

// levelSummary names the hidden severities, empty when everything is shown
func (m rootModel) levelSummary() string {
	var hidden []string

	for _, level := range gamelog.Levels {
		if !m.logview.LevelEnabled(level) {
			hidden = append(hidden, string(level))
		}
	}

	if len(hidden) == 0 {
		return ""
	}

	return "hidden: " + strings.Join(hidden, ",")
}

// footerView renders the search input while searching, the help line
// otherwise
func (m rootModel) footerView() string {
	if m.logview.Searching() {
		return " " + m.logview.SearchView()
	}

	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		if b.Help().Key == "e" && m.opts.Export == nil {
			continue
		}

		parts = append(parts,
			components.HelpKeyStyle.Render(b.Help().Key)+" "+components.HelpDescStyle.Render(b.Help().Desc))
	}

	return components.HelpStyle.Render(strings.Join(parts, "  "))
}

// waitForLines re-arms after every delivery so chunks arrive in order
func waitForLines(ch <-chan []gamelog.Line) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		lines, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}

		return linesMsg(lines)
	}
}

func tick() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
