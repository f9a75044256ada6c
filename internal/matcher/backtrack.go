package matcher

import (
	"github.com/dlclark/regexp2"
)

type backtracker struct {
	re *regexp2.Regexp
}

// NewBacktracker compiles pattern with regexp2 in ECMAScript mode, the
// dialect the generator emits.
func NewBacktracker(pattern string, opts Options) (Matcher, error) {
	options := regexp2.RegexOptions(regexp2.ECMAScript)
	if opts.IgnoreCase {
		options |= regexp2.IgnoreCase
	}
	if opts.Multiline {
		options |= regexp2.Multiline
	}
	re, err := regexp2.Compile(pattern, options)
	if err != nil {
		return nil, err
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}
	return &backtracker{re: re}, nil
}

func (b *backtracker) MatchString(s string) (bool, error) {
	return b.re.MatchString(s)
}

func (b *backtracker) FindSubmatchIndex(s string) ([]int, error) {
	all, err := b.FindAllSubmatchIndex(s, 1)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (b *backtracker) FindAllSubmatchIndex(s string, n int) ([][]int, error) {
	if n == 0 {
		return nil, nil
	}
	offsets := byteOffsets(s)
	m, err := b.re.FindRunesMatch([]rune(s))
	var out [][]int
	for m != nil && err == nil {
		out = append(out, indexPairs(m, offsets))
		if n > 0 && len(out) >= n {
			break
		}
		m, err = b.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// byteOffsets maps rune index to byte offset. The extra final entry is
// len(s), the offset one past the last rune. Ranging over s decodes invalid
// bytes one at a time, the same way []rune(s) does.
func byteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func indexPairs(m *regexp2.Match, offsets []int) []int {
	count := m.GroupCount()
	loc := make([]int, 2*count)
	for i := 0; i < count; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			loc[2*i], loc[2*i+1] = -1, -1
			continue
		}
		loc[2*i] = offsets[g.Index]
		loc[2*i+1] = offsets[g.Index+g.Length]
	}
	return loc
}
