package regexgen

import (
	"fmt"
	"strings"
)

// sequence concatenates or alternates its terms, optionally between a fixed
// prefix and suffix such as "(?=" and ")".
type sequence struct {
	terms     []*Fragment
	alternate bool
	prefix    string
	suffix    string
	assertion bool // lookahead; needs the backtracking engine
}

func (s *sequence) generate(ctx *genContext, wrap wrapLevel) string {
	if s.assertion {
		ctx.backtracking = true
	}
	enclosed := s.prefix != "" || s.suffix != ""
	alternation := s.alternate && len(s.terms) > 1

	var child wrapLevel
	switch {
	case len(s.terms) == 1 && !enclosed && wrap == wrapIfAlternation:
		// A lone term stands in for the sequence itself.
		child = wrapIfAlternation
	case len(s.terms) <= 1 || alternation:
		child = wrapNone
	default:
		child = wrapIfAlternation
	}

	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.generate(ctx, child)
	}

	var body string
	if alternation {
		body = strings.Join(parts, "|")
	} else {
		body = concat(parts)
	}

	switch {
	case enclosed:
		return s.prefix + body + s.suffix
	case wrap == wrapAlways, wrap == wrapIfAlternation && alternation:
		return wrapUnit(body)
	}
	return body
}

// concat joins rendered siblings. An empty group separates a numeric escape
// from a following digit so `\1` and `0` never read as `\10`.
func concat(parts []string) string {
	var b strings.Builder
	prev := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if endsWithNumericEscape(prev) && p[0] >= '0' && p[0] <= '9' {
			b.WriteString("(?:)")
		}
		b.WriteString(p)
		prev = p
	}
	return b.String()
}

func endsWithNumericEscape(s string) bool {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return false
	}
	return endsEscaped(s[:i])
}

// capture is a sequence that registers a capture group before rendering, so
// captures are numbered in depth-first, left-to-right order.
type capture struct {
	sequence
	label string
}

func (c *capture) generate(ctx *genContext, wrap wrapLevel) string {
	ctx.register(c.label)
	return c.sequence.generate(ctx, wrap)
}

// Either matches any one of the terms.
//
// Example:
//
//	regexgen.Either("cat", "dog").String() // `cat|dog`
func Either(terms ...any) *Fragment {
	f := newFragment(&sequence{terms: sanitizeAll(terms), alternate: true})
	if len(terms) < 2 {
		f.warnings = append(f.warnings, warning(DegenerateAlternation,
			fmt.Sprintf("Either(): needs at least 2 sub-expressions, got %d", len(terms))))
	}
	return f
}

// Group concatenates the terms into one fragment without capturing.
// The non-capturing group is only emitted when the output needs it.
func Group(terms ...any) *Fragment {
	return newFragment(&sequence{terms: sanitizeAll(terms)})
}

// Capture concatenates the terms into a capturing group.
// If the first term is a Label, the capture is registered under it and can
// be referenced with SameAs and read back with Pattern.Extract. Unlabeled
// captures are registered under their index.
//
// Example:
//
//	regexgen.Capture(regexgen.Label("year"), regexgen.Digital().Repeat(4))
func Capture(terms ...any) *Fragment {
	var label string
	if len(terms) > 0 {
		if l, ok := terms[0].(Label); ok {
			label = string(l)
			terms = terms[1:]
		}
	}
	return newFragment(&capture{
		sequence: sequence{terms: sanitizeAll(terms), prefix: "(", suffix: ")"},
		label:    label,
	})
}
