package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

// Options configures one viewer run
type Options struct {
	// Title names the source shown in the header (file path or instance)
	Title string
	// Tailing enables the live heartbeat indicator
	Tailing bool
	// Initial is the bulk-parsed content shown on startup
	Initial []gamelog.Line
	// Updates delivers live chunks; nil for static sources. A closed channel
	// marks the end of the stream.
	Updates <-chan []gamelog.Line
	// Export publishes the visible lines and returns a URL; nil disables the
	// export key
	Export func(ctx context.Context, lines []gamelog.Line) (string, error)
}

// Runner drives the interactive viewer
type Runner interface {
	Run(ctx context.Context, opts Options) error
}

// runner implements the Runner interface
type runner struct {
	cfg *config.Config
	log logger.Logger
}

// NewRunner creates a new Runner instance
func NewRunner(cfg *config.Config, log logger.Logger) Runner {
	return &runner{
		cfg: cfg,
		log: log.WithComponent("UI"),
	}
}

// Run blocks until the viewer exits
func (r *runner) Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		newRootModel(r.cfg, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()

	return err
}
