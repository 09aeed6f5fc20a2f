package logview

import (
	"regexp"
	"strings"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/ui/components"
)

// View returns the rendered log view
func (m Model) View() string {
	if m.store.Len() == 0 {
		return components.EmptyStateStyle.Render("No log lines yet.")
	}

	if strings.TrimSpace(m.viewport.View()) == "" {
		return components.EmptyStateStyle.Render("All lines filtered out. Press 1-5 to toggle levels, esc to clear the search.")
	}

	return m.viewport.View()
}

// SearchView returns the rendered search input for the footer
func (m Model) SearchView() string {
	return m.search.View()
}

// renderLines renders the visible lines into viewport content
func (m *Model) renderLines(lines []gamelog.Line) string {
	var builder strings.Builder

	for _, line := range lines {
		m.renderLine(&builder, line)
	}

	return strings.TrimSuffix(builder.String(), "\n")
}

// renderLine writes one styled line. Parsed lines show timestamp, thread and
// level; continuation lines get an indented gutter instead.
func (m *Model) renderLine(builder *strings.Builder, line gamelog.Line) {
	text := m.highlightSearch(line.Text)

	if line.Timestamp == "" {
		builder.WriteString(continuationStyle.Render(" │ "))
		builder.WriteString(text)
		builder.WriteRune('\n')

		return
	}

	thread := line.Thread
	if len(thread) > components.ThreadNameMaxWidth {
		thread = thread[:components.ThreadNameMaxWidth] + "…"
	}

	builder.WriteString(components.TimestampStyle.Render(line.Timestamp))
	builder.WriteRune(' ')
	builder.WriteString(threadStyle(line.Thread).Render(thread))
	builder.WriteString(components.SeparatorStyle.Render("/"))
	builder.WriteString(components.LevelStyle(line.Level).Render(levelLabel(line.Level)))
	builder.WriteString(components.SeparatorStyle.Render(": "))
	builder.WriteString(text)
	builder.WriteRune('\n')
}

// highlightSearch reverses the matched fragments of the active query
func (m *Model) highlightSearch(text string) string {
	query := m.filter.Search()
	if query == "" {
		return text
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return text
	}

	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		return searchMatchStyle.Render(match)
	})
}

// levelLabel renders a level token, with a placeholder for unleveled lines
func levelLabel(level gamelog.Level) string {
	if level == "" {
		return "-"
	}

	return string(level)
}
