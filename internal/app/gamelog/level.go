package gamelog

import "strings"

// Level is one of the five fixed game log severities
type Level string

// Known severities
const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
	LevelInfo  Level = "INFO"
	LevelDebug Level = "DEBUG"
	LevelTrace Level = "TRACE"
)

// Levels lists the known severities in display order. The filter UI renders
// its toggles from this slice and the classifier accepts exactly this set;
// the two must stay in lockstep.
var Levels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// ParseLevel matches a severity token case-insensitively against the known
// vocabulary. Unknown tokens yield false and the zero Level.
func ParseLevel(s string) (Level, bool) {
	candidate := Level(strings.ToUpper(s))

	for _, l := range Levels {
		if candidate == l {
			return l, true
		}
	}

	return "", false
}
