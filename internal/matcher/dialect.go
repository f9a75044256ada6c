package matcher

import (
	"strings"
)

// Class items, in RE2 syntax, for the ECMAScript character sets whose RE2
// reading differs. They follow regexp2's ECMAScript mode, so both engines
// accept the same characters.
const (
	// dotExcluded are the characters '.' does not match.
	dotExcluded = `\n\r`

	// whiteSpace is the \s set.
	whiteSpace = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

	// nonWhiteSpace is the complement of whiteSpace, the \S set.
	nonWhiteSpace = `\x00-\x08\x0e-\x1f\x21-\x{9f}\x{a1}-\x{167f}\x{1681}-\x{1fff}\x{200b}-\x{2027}` +
		`\x{202a}-\x{202e}\x{2030}-\x{205e}\x{2060}-\x{2fff}\x{3001}-\x{fefe}\x{ff00}-\x{10ffff}`
)

// toRE2 rewrites '.', \s and \S into explicit classes so the RE2 engine
// matches them the way the backtracker does. Everything else is copied
// unchanged.
func toRE2(pattern string) string {
	if !strings.ContainsAny(pattern, `.\`) {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern))
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			i++
			switch next := pattern[i]; {
			case next == 's' && inClass:
				b.WriteString(whiteSpace)
			case next == 'S' && inClass:
				b.WriteString(nonWhiteSpace)
			case next == 's':
				b.WriteString("[" + whiteSpace + "]")
			case next == 'S':
				b.WriteString("[^" + whiteSpace + "]")
			default:
				b.WriteByte(c)
				b.WriteByte(next)
			}
			continue
		}

		switch {
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '.':
			b.WriteString("[^" + dotExcluded + "]")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
