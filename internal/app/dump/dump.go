package dump

import (
	"context"
	"io"

	"go.uber.org/fx"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

// Dumper streams parsed log lines to a writer without a TUI
type Dumper interface {
	Run(ctx context.Context, w io.Writer, source string, initial []gamelog.Line, updates <-chan []gamelog.Line) error
}

// dumper implements the Dumper interface
type dumper struct {
	formatter *Formatter
	log       logger.Logger
}

// NewDumper creates a new Dumper instance
func NewDumper(cfg *config.Config, log logger.Logger) Dumper {
	return &dumper{
		formatter: NewFormatter(cfg),
		log:       log.WithComponent("DUMP"),
	}
}

// Run writes the initial content, then streams chunks until the update
// channel closes or the context is cancelled. A nil channel means a one-shot
// static dump.
func (d *dumper) Run(ctx context.Context, w io.Writer, source string, initial []gamelog.Line, updates <-chan []gamelog.Line) error {
	d.formatter.WriteBanner(w, source, updates != nil)
	d.formatter.WriteLines(w, initial)

	if updates == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines, ok := <-updates:
			if !ok {
				d.log.Debug().Str("source", source).Msg("Stream ended")

				return nil
			}

			d.formatter.WriteLines(w, lines)
		}
	}
}

// Module provides the dump components for dependency injection
var Module = fx.Module("dump",
	fx.Provide(NewDumper),
)
