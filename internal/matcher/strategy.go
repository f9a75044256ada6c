package matcher

import (
	"regexp/syntax"
)

// Strategy names the engine that executes a generated pattern.
//
// Generated patterns come in two flavours:
//   - UseCoregex: the pattern is RE2-compatible and runs on the coregex
//     engine with its linear-time guarantee
//   - UseBacktracker: the pattern uses lookarounds or back-references and
//     runs on the regexp2 backtracking engine in ECMAScript mode
//
// UseAuto is the zero value. It is only meaningful as a request: it lets
// Select pick one of the two.
type Strategy int

const (
	// UseAuto selects the engine from the pattern.
	UseAuto Strategy = iota

	// UseCoregex executes the pattern with github.com/coregx/coregex.
	UseCoregex

	// UseBacktracker executes the pattern with github.com/dlclark/regexp2.
	// Selected for:
	//   - lookaheads and lookbehinds
	//   - back-references
	//   - ECMAScript-only escapes (\cX, \uhhhh, [\b]) RE2 rejects
	UseBacktracker
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseAuto:
		return "UseAuto"
	case UseCoregex:
		return "UseCoregex"
	case UseBacktracker:
		return "UseBacktracker"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s >= UseAuto && s <= UseBacktracker
}

// SupportsRE2 reports whether pattern parses under Perl-flavoured RE2 syntax.
func SupportsRE2(pattern string) bool {
	_, err := syntax.Parse(pattern, syntax.Perl)
	return err == nil
}

// Select picks the engine for a pattern.
//
// A pattern that needs backtracking always selects UseBacktracker under
// UseAuto; otherwise the RE2 syntax probe decides. An explicit request is
// returned unchanged, Compile rejects impossible ones.
func Select(pattern string, backtracking bool, requested Strategy) Strategy {
	if requested != UseAuto {
		return requested
	}
	if backtracking || !SupportsRE2(pattern) {
		return UseBacktracker
	}
	return UseCoregex
}
