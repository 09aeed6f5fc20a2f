package dump

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodestone/internal/app/gamelog"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

func consoleConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = logger.ConsoleFormat

	return cfg
}

func jsonConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = logger.JSONFormat

	return cfg
}

func Test_Formatter_FormatLine_Console(t *testing.T) {
	f := NewFormatter(consoleConfig())

	line := f.FormatLine(gamelog.Line{
		ID:        0,
		Timestamp: "10:00:00",
		Thread:    "Server thread",
		Level:     gamelog.LevelWarn,
		Text:      "Can't keep up!",
	})

	assert.Contains(t, line, "10:00:00")
	assert.Contains(t, line, "Server thread")
	assert.Contains(t, line, "WARN")
	assert.Contains(t, line, "Can't keep up!")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func Test_Formatter_FormatLine_Continuation(t *testing.T) {
	f := NewFormatter(consoleConfig())

	line := f.FormatLine(gamelog.Line{
		ID:     3,
		Thread: "Server thread",
		Level:  gamelog.LevelError,
		Text:   "\tat Server.tick(Server.java:99)",
	})

	assert.Contains(t, line, "│")
	assert.Contains(t, line, "at Server.tick")
	assert.NotContains(t, line, "ERROR", "continuation lines keep only the text")
}

func Test_Formatter_FormatLine_JSON(t *testing.T) {
	f := NewFormatter(jsonConfig())

	out := f.FormatLine(gamelog.Line{
		ID:        7,
		Timestamp: "10:00:00",
		Thread:    "main",
		Level:     gamelog.LevelInfo,
		Text:      "started",
	})

	var decoded jsonLine
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 7, decoded.ID)
	assert.Equal(t, "main", decoded.Thread)
	assert.Equal(t, "INFO", decoded.Level)
	assert.Equal(t, "started", decoded.Text)
}

func Test_Formatter_WriteBanner(t *testing.T) {
	t.Run("Console shows source and mode", func(t *testing.T) {
		var buf bytes.Buffer

		NewFormatter(consoleConfig()).WriteBanner(&buf, "logs/latest.log", true)

		output := buf.String()
		assert.Contains(t, output, "logs/latest.log")
		assert.Contains(t, output, "following")
		assert.Contains(t, output, "v"+config.Version)
	})

	t.Run("JSON stays machine readable", func(t *testing.T) {
		var buf bytes.Buffer

		NewFormatter(jsonConfig()).WriteBanner(&buf, "logs/latest.log", false)

		assert.Empty(t, buf.String())
	})
}

func Test_Dumper_Run_Static(t *testing.T) {
	cfg := consoleConfig()
	log := logger.NewLoggerWithOutput(cfg, io.Discard)
	d := NewDumper(cfg, log)

	var buf bytes.Buffer

	lines := []gamelog.Line{
		{ID: 0, Timestamp: "10:00:00", Thread: "main", Level: gamelog.LevelInfo, Text: "started"},
		{ID: 1, Thread: "main", Level: gamelog.LevelInfo, Text: "detail"},
	}

	require.NoError(t, d.Run(context.Background(), &buf, "vanilla", lines, nil))

	output := buf.String()
	assert.Contains(t, output, "static")
	assert.Contains(t, output, "started")
	assert.Contains(t, output, "detail")
}

func Test_Dumper_Run_Stream(t *testing.T) {
	cfg := consoleConfig()
	log := logger.NewLoggerWithOutput(cfg, io.Discard)
	d := NewDumper(cfg, log)

	updates := make(chan []gamelog.Line, 2)
	updates <- []gamelog.Line{{ID: 0, Timestamp: "10:00:00", Thread: "main", Level: gamelog.LevelInfo, Text: "one"}}
	updates <- []gamelog.Line{{ID: 1, Timestamp: "10:00:01", Thread: "main", Level: gamelog.LevelInfo, Text: "two"}}
	close(updates)

	var buf bytes.Buffer

	require.NoError(t, d.Run(context.Background(), &buf, "vanilla", nil, updates))

	output := buf.String()
	assert.Contains(t, output, "following")
	assert.Contains(t, output, "one")
	assert.Contains(t, output, "two")
}

func Test_Dumper_Run_ContextCancel(t *testing.T) {
	cfg := consoleConfig()
	log := logger.NewLoggerWithOutput(cfg, io.Discard)
	d := NewDumper(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, io.Discard, "vanilla", nil, make(chan []gamelog.Line))
	assert.ErrorIs(t, err, context.Canceled)
}
