package gamelog

import "strings"

// Parser carries classification state across incremental parse calls so
// continuation lines arriving in later chunks inherit the correct level and
// thread. A parser instance belongs to exactly one viewing session and must
// not be shared between goroutines; callers feeding a live stream serialize
// their Parse calls in arrival order.
type Parser struct {
	nextID int
	inh    inherited
}

// State is a read-only snapshot of a parser's session state
type State struct {
	NextID     int
	LastLevel  Level
	LastThread string
}

// NewParser creates a parser with a fresh id counter and no inherited state
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits content into lines and classifies each one in order. Both \n
// and \r\n endings are accepted; content ending in a line break does not
// produce a trailing empty line. Parsing is total: every input line yields
// exactly one Line and there is no error path.
func (p *Parser) Parse(content string) []Line {
	raws := splitLines(content)
	lines := make([]Line, 0, len(raws))

	for _, raw := range raws {
		line, inh := classify(raw, p.inh)
		p.inh = inh

		line.ID = p.nextID
		p.nextID++

		lines = append(lines, line)
	}

	return lines
}

// Reset clears the inherited level and thread so state from a previous
// source cannot leak into the next one. When resetIDs is true the id counter
// restarts from zero as well.
func (p *Parser) Reset(resetIDs bool) {
	p.inh = inherited{}

	if resetIDs {
		p.nextID = 0
	}
}

// State returns a snapshot of the parser's session state
func (p *Parser) State() State {
	return State{
		NextID:     p.nextID,
		LastLevel:  p.inh.level,
		LastThread: p.inh.thread,
	}
}

// ParseContent classifies a complete chunk in isolation: inheritance starts
// unset and ids are zero-based on every call
func ParseContent(content string) []Line {
	return NewParser().Parse(content)
}

// splitLines splits on newlines, tolerating CRLF endings. A single trailing
// empty segment (content ending in a line break) is dropped; interior empty
// lines are kept.
func splitLines(content string) []string {
	raws := strings.Split(content, "\n")

	if n := len(raws); n > 0 && raws[n-1] == "" {
		raws = raws[:n-1]
	}

	for i, raw := range raws {
		raws[i] = strings.TrimSuffix(raw, "\r")
	}

	return raws
}
