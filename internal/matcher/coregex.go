package matcher

import (
	"github.com/coregx/coregex"
)

type coregexMatcher struct {
	re *coregex.Regex
}

// NewCoregex compiles pattern with the coregex engine. Case folding and
// multi-line anchors are applied as an inline flag group, and '.', \s and \S
// are rewritten to the classes the backtracker uses.
func NewCoregex(pattern string, opts Options) (Matcher, error) {
	re, err := coregex.CompileWithConfig(inlineFlags(opts)+toRE2(pattern), opts.Coregex)
	if err != nil {
		return nil, err
	}
	return &coregexMatcher{re: re}, nil
}

func inlineFlags(opts Options) string {
	switch {
	case opts.IgnoreCase && opts.Multiline:
		return "(?im)"
	case opts.IgnoreCase:
		return "(?i)"
	case opts.Multiline:
		return "(?m)"
	}
	return ""
}

func (m *coregexMatcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s), nil
}

func (m *coregexMatcher) FindSubmatchIndex(s string) ([]int, error) {
	return m.re.FindStringSubmatchIndex(s), nil
}

func (m *coregexMatcher) FindAllSubmatchIndex(s string, n int) ([][]int, error) {
	return m.re.FindAllStringSubmatchIndex(s, n), nil
}
