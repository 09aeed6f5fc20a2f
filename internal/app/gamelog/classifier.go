package gamelog

import (
	"regexp"
	"strings"
)

// Line is one interpreted line of game log output
type Line struct {
	ID        int
	Raw       string
	Timestamp string
	Thread    string
	Level     Level
	Text      string
}

// inherited carries the level and thread of the most recent structured line
type inherited struct {
	level  Level
	thread string
}

// The known structured formats, tried in order; first match wins. Order
// matters: the vanilla format is the most specific, and the bracketed-source
// variant must be tried before the no-source one. Every pattern is anchored
// against the whole line so bracket-like substrings elsewhere never match.
var formats = []*regexp.Regexp{
	// [HH:MM:SS] [Thread/LEVEL]: message
	regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2})\] \[([^/\]]+)/([^\]]+)\]: (.*)$`),
	// [timestamp] [Thread/LEVEL] [source]: message — source is discarded
	regexp.MustCompile(`^\[([^\]]+)\] \[([^/\]]+)/([^\]]+)\] \[[^\]]*\]: (.*)$`),
	// [timestamp] [Thread/LEVEL]: message
	regexp.MustCompile(`^\[([^\]]+)\] \[([^/\]]+)/([^\]]+)\]: (.*)$`),
}

// classify interprets a single raw line. A structured match extracts
// timestamp, thread, level and message; anything else becomes a continuation
// line inheriting the carried-over level and thread. A matched line whose
// level token is outside the known vocabulary keeps its timestamp and thread
// but leaves the level unset, without touching the inherited level. The
// returned state reflects this line.
func classify(raw string, inh inherited) (Line, inherited) {
	for _, re := range formats {
		groups := re.FindStringSubmatch(raw)
		if groups == nil {
			continue
		}

		line := Line{
			Raw:       raw,
			Timestamp: groups[1],
			Thread:    groups[2],
			Text:      strings.TrimSpace(groups[4]),
		}

		inh.thread = line.Thread

		if level, ok := ParseLevel(groups[3]); ok {
			line.Level = level
			inh.level = level
		}

		return line, inh
	}

	// Continuation: keep leading indentation, stack traces depend on it
	return Line{
		Raw:    raw,
		Thread: inh.thread,
		Level:  inh.level,
		Text:   strings.TrimRight(raw, " \t"),
	}, inh
}
