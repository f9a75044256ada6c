// Package matcher executes generated patterns.
//
// Two engines sit behind one interface: the coregex engine for RE2-compatible
// patterns and the regexp2 backtracking engine for patterns that need
// lookarounds or back-references. All offsets returned by a Matcher are byte
// offsets into the searched string, whatever the engine counts internally.
package matcher

import (
	"errors"
	"time"

	"github.com/coregx/coregex/meta"
)

// ErrUnsupported indicates a pattern that needs backtracking was forced onto
// the RE2 engine.
var ErrUnsupported = errors.New("pattern requires a backtracking engine")

// Matcher is a compiled pattern.
//
// Index slices follow the stdlib regexp convention: pairs of byte offsets,
// pair i for capture group i, -1 for a group that did not participate.
// Engine failures (a regexp2 match timeout) are returned as errors.
type Matcher interface {
	MatchString(s string) (bool, error)
	FindSubmatchIndex(s string) ([]int, error)
	// FindAllSubmatchIndex returns at most n matches; n < 0 means all.
	FindAllSubmatchIndex(s string, n int) ([][]int, error)
}

// Options configures engine compilation.
type Options struct {
	IgnoreCase bool
	Multiline  bool

	// Coregex is passed to coregex.CompileWithConfig.
	Coregex meta.Config

	// MatchTimeout bounds a single regexp2 match. Zero means no limit.
	MatchTimeout time.Duration
}

// Compile builds a Matcher for pattern on the engine Select picks for it.
// It returns the strategy it used, also on error.
func Compile(pattern string, backtracking bool, requested Strategy, opts Options) (Matcher, Strategy, error) {
	strategy := Select(pattern, backtracking, requested)
	switch strategy {
	case UseCoregex:
		if backtracking {
			return nil, strategy, ErrUnsupported
		}
		m, err := NewCoregex(pattern, opts)
		return m, strategy, err
	default:
		m, err := NewBacktracker(pattern, opts)
		return m, UseBacktracker, err
	}
}
