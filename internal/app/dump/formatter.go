package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/ui/components"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

const minBannerWidth = 40

// Formatter renders parsed log lines for plain stdout output. Console format
// colors the parsed fields with lipgloss; JSON format emits one object per
// line for piping into other tools.
type Formatter struct {
	format         string
	timestampStyle lipgloss.Style
	separatorStyle lipgloss.Style
	bannerStyle    lipgloss.Style
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		format:         cfg.Logging.Format,
		timestampStyle: components.TimestampStyle,
		separatorStyle: components.SeparatorStyle,
		bannerStyle:    components.StatusStyle,
	}
}

// jsonLine is the wire shape of one dumped line in JSON format
type jsonLine struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp,omitempty"`
	Thread    string `json:"thread,omitempty"`
	Level     string `json:"level,omitempty"`
	Text      string `json:"text"`
}

// WriteBanner writes a source banner sized to the terminal. JSON format
// skips it so the output stays machine-readable.
func (f *Formatter) WriteBanner(w io.Writer, source string, tailing bool) {
	if f.format == logger.JSONFormat {
		return
	}

	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width < minBannerWidth {
		width = components.DefaultViewportWidth
	}

	mode := "static"
	if tailing {
		mode = "following"
	}

	header := fmt.Sprintf("%s v%s · %s · %s", config.AppName, config.Version, source, mode)

	fmt.Fprintln(w, f.bannerStyle.Render(header))
	fmt.Fprintln(w, f.separatorStyle.Render(strings.Repeat("─", width)))
}

// WriteLines formats and writes a batch of parsed lines
func (f *Formatter) WriteLines(w io.Writer, lines []gamelog.Line) {
	for _, line := range lines {
		fmt.Fprint(w, f.FormatLine(line))
	}
}

// FormatLine renders a single parsed line with a trailing newline
func (f *Formatter) FormatLine(line gamelog.Line) string {
	if f.format == logger.JSONFormat {
		return f.formatJSON(line)
	}

	return f.formatConsole(line)
}

// formatJSON emits one JSON object per line
func (f *Formatter) formatJSON(line gamelog.Line) string {
	data, err := json.Marshal(jsonLine{
		ID:        line.ID,
		Timestamp: line.Timestamp,
		Thread:    line.Thread,
		Level:     string(line.Level),
		Text:      line.Text,
	})
	if err != nil {
		return fmt.Sprintf(`{"id":%d,"text":%q}`+"\n", line.ID, line.Text)
	}

	return string(data) + "\n"
}

// formatConsole renders a colored line; continuation lines get a gutter
// instead of the parsed prefix
func (f *Formatter) formatConsole(line gamelog.Line) string {
	if line.Timestamp == "" {
		return f.separatorStyle.Render(" │ ") + line.Text + "\n"
	}

	level := "-"
	if line.Level != "" {
		level = string(line.Level)
	}

	return f.timestampStyle.Render(line.Timestamp) + " " +
		components.LevelStyle(line.Level).Render(fmt.Sprintf("%-5s", level)) + " " +
		f.separatorStyle.Render(line.Thread+":") + " " +
		line.Text + "\n"
}
