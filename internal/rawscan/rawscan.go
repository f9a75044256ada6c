// Package rawscan inspects verbatim pattern text supplied by callers.
//
// Raw text is spliced into generated patterns unchanged, so the generator
// needs three facts about it: how many capture groups it opens (to keep the
// capture numbering in step), whether it has an alternation at its top level
// (to protect it when siblings are concatenated), and whether it uses
// constructs that only a backtracking engine can execute.
package rawscan

import (
	"strings"
	"sync"

	"github.com/coregx/ahocorasick"
)

// Report summarizes a raw pattern.
type Report struct {
	// Captures is the number of capturing groups the text opens.
	Captures int

	// Alternation reports a '|' outside any group or class.
	Alternation bool

	// Backtracking reports lookarounds, atomic groups or back-references.
	Backtracking bool
}

// backtrackingMarkers are the literal openers of constructs RE2 rejects.
var backtrackingMarkers = []string{
	"(?=", "(?!", "(?<=", "(?<!", "(?>", `\k<`,
	`\1`, `\2`, `\3`, `\4`, `\5`, `\6`, `\7`, `\8`, `\9`,
}

var markerAutomaton = sync.OnceValues(func() (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, m := range backtrackingMarkers {
		builder.AddPattern([]byte(m))
	}
	return builder.Build()
})

// Scan analyzes pattern. It never fails: malformed text (an unbalanced
// parenthesis, an unterminated class) is scanned as far as it goes and left
// for the engine to reject.
func Scan(pattern string) Report {
	var r Report

	// active[i] is true when byte i is syntax: outside a bracket expression
	// and not the operand of a backslash.
	active := make([]bool, len(pattern))
	depth := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			active[i] = !inClass
			i++
			continue
		}
		if inClass {
			if c == ']' {
				inClass = false
			}
			continue
		}
		active[i] = true
		switch c {
		case '[':
			inClass = true
		case '(':
			depth++
			if opensCapture(pattern[i+1:]) {
				r.Captures++
			}
		case ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				r.Alternation = true
			}
		}
	}

	r.Backtracking = hasMarker(pattern, active)
	return r
}

// opensCapture reports whether a '(' followed by rest starts a capturing
// group: a plain group or a named one.
func opensCapture(rest string) bool {
	if !strings.HasPrefix(rest, "?") {
		return true
	}
	switch {
	case strings.HasPrefix(rest, "?P<"):
		return true
	case strings.HasPrefix(rest, "?<="), strings.HasPrefix(rest, "?<!"):
		return false
	case strings.HasPrefix(rest, "?<"):
		return true
	}
	return false
}

func hasMarker(pattern string, active []bool) bool {
	auto, err := markerAutomaton()
	if err != nil {
		// Without the automaton fall back to a plain substring check.
		for _, m := range backtrackingMarkers {
			if strings.Contains(pattern, m) {
				return true
			}
		}
		return false
	}

	haystack := []byte(pattern)
	for at := 0; at < len(haystack); {
		m := auto.Find(haystack, at)
		if m == nil {
			return false
		}
		if active[m.Start] {
			return true
		}
		at = m.Start + 1
	}
	return false
}
