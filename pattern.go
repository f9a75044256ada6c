package regexgen

import (
	"slices"

	"github.com/coregx/regexgen/internal/matcher"
)

// Pattern is a generated and compiled regular expression.
//
// A Pattern is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	p := regexgen.MustCompile(regexgen.Capture(regexgen.Label("n"), regexgen.Digital().Many()))
//	p.Extract("abc 42") // map[0:42 n:42]
type Pattern struct {
	source  Source
	matcher matcher.Matcher
	engine  Strategy
}

// String returns the generated pattern text.
func (p *Pattern) String() string {
	return p.source.Pattern
}

// Flags returns the modifiers the pattern was generated with.
func (p *Pattern) Flags() Flags {
	return p.source.Flags
}

// Source returns a copy of the generation result.
func (p *Pattern) Source() Source {
	src := p.source
	src.Captures = slices.Clone(src.Captures)
	src.Warnings = slices.Clone(src.Warnings)
	return src
}

// Captures returns the capture registry: the label of capture i at index i.
// Index 0 is "0", the whole match.
func (p *Pattern) Captures() []string {
	return slices.Clone(p.source.Captures)
}

// Warnings returns the diagnostics collected during generation.
func (p *Pattern) Warnings() []Warning {
	return slices.Clone(p.source.Warnings)
}

// Engine returns the engine executing the pattern: UseCoregex or
// UseBacktracker.
func (p *Pattern) Engine() Strategy {
	return p.engine
}

// NumSubexp returns the number of capture groups, raw ones included.
func (p *Pattern) NumSubexp() int {
	return len(p.source.Captures) - 1
}

// SubexpIndex returns the index of the first capture registered under
// label, or -1 if there is none.
//
// Example:
//
//	p := regexgen.MustCompile(regexgen.Capture(regexgen.Label("year"), regexgen.Digital().Repeat(4)))
//	p.SubexpIndex("year") // 1
func (p *Pattern) SubexpIndex(label string) int {
	if label == "" {
		return -1
	}
	for i := 1; i < len(p.source.Captures); i++ {
		if p.source.Captures[i] == label {
			return i
		}
	}
	return -1
}

// MatchString reports whether s contains any match of the pattern.
// A match that exceeds Config.MatchTimeout counts as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.matcher.MatchString(s)
	return err == nil && ok
}

// FindString returns the text of the leftmost match in s, or "" if there is
// none.
func (p *Pattern) FindString(s string) string {
	loc := p.FindStringSubmatchIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringSubmatchIndex returns the byte offsets of the leftmost match and
// its captures. Result[2*i:2*i+2] holds capture i; unmatched captures are -1.
// A return value of nil indicates no match.
func (p *Pattern) FindStringSubmatchIndex(s string) []int {
	loc, err := p.matcher.FindSubmatchIndex(s)
	if err != nil {
		return nil
	}
	return loc
}

// FindStringSubmatch returns the text of the leftmost match and of its
// captures, "" for unmatched ones. A return value of nil indicates no match.
func (p *Pattern) FindStringSubmatch(s string) []string {
	loc := p.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}
	return submatches(s, loc)
}

// FindAllStringSubmatchIndex is the 'All' version of FindStringSubmatchIndex.
// If n >= 0, it returns at most n matches.
func (p *Pattern) FindAllStringSubmatchIndex(s string, n int) [][]int {
	all, err := p.matcher.FindAllSubmatchIndex(s, n)
	if err != nil {
		return nil
	}
	return all
}

// FindAllStringSubmatch is the 'All' version of FindStringSubmatch.
func (p *Pattern) FindAllStringSubmatch(s string, n int) [][]string {
	all := p.FindAllStringSubmatchIndex(s, n)
	if all == nil {
		return nil
	}
	out := make([][]string, len(all))
	for i, loc := range all {
		out[i] = submatches(s, loc)
	}
	return out
}

func submatches(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

// Extract returns the captures of the leftmost match by label: "0" for the
// whole match, the label for labelled captures and the index for unlabeled
// ones. Captures that did not participate and captures inside raw patterns
// are left out. When several captures share a label, the first wins.
// A return value of nil indicates no match.
//
// Example:
//
//	p := regexgen.MustCompile(
//	    regexgen.Capture(regexgen.Label("name"), regexgen.Words()), ": ",
//	    regexgen.Capture(regexgen.Label("age"), regexgen.Digital().Many()),
//	)
//	p.Extract("Conan: 8, Kudo: 17")
//	// map[0:Conan: 8 age:8 name:Conan]
func (p *Pattern) Extract(text string) map[string]string {
	loc := p.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	return p.captureMap(text, loc)
}

// ExtractAll returns Extract's map for every match when the pattern was
// generated with SearchAll, and for the first match only otherwise.
// A return value of nil indicates no match.
func (p *Pattern) ExtractAll(text string) []map[string]string {
	all := p.FindAllStringSubmatchIndex(text, p.matchLimit())
	if len(all) == 0 {
		return nil
	}
	out := make([]map[string]string, len(all))
	for i, loc := range all {
		out[i] = p.captureMap(text, loc)
	}
	return out
}

// matchLimit is the number of matches ExtractAll and Replace visit.
func (p *Pattern) matchLimit() int {
	if p.source.Flags.Global {
		return -1
	}
	return 1
}

func (p *Pattern) captureMap(text string, loc []int) map[string]string {
	m := make(map[string]string, len(p.source.Captures))
	for i, label := range p.source.Captures {
		if label == "" || 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		if _, seen := m[label]; seen {
			continue
		}
		m[label] = text[loc[2*i]:loc[2*i+1]]
	}
	return m
}
