package regexgen

import "strings"

// Modifier is a pattern-wide flag. Modifiers are only recognised among the
// top-level terms passed to Generate or Compile; anywhere else they are
// ignored with a warning.
type Modifier byte

const (
	modSearchAll  Modifier = 'g'
	modIgnoreCase Modifier = 'i'
	modMultiLine  Modifier = 'm'
)

// IgnoreCase makes the pattern match letters case-insensitively.
func IgnoreCase() Modifier { return modIgnoreCase }

// SearchAll makes ExtractAll and Replace visit every match instead of the
// first one.
func SearchAll() Modifier { return modSearchAll }

// SearchMultiLine makes StartOfLine and EndOfLine match at line breaks.
func SearchMultiLine() Modifier { return modMultiLine }

// Flags is the set of modifiers a pattern was generated with.
type Flags struct {
	Global     bool
	IgnoreCase bool
	Multiline  bool
}

// String returns the flags in their conventional "gim" order.
func (f Flags) String() string {
	var b strings.Builder
	if f.Global {
		b.WriteByte(byte(modSearchAll))
	}
	if f.IgnoreCase {
		b.WriteByte(byte(modIgnoreCase))
	}
	if f.Multiline {
		b.WriteByte(byte(modMultiLine))
	}
	return b.String()
}

// set turns m on and reports whether it was recognised and not already set.
func (f *Flags) set(m Modifier) (known, fresh bool) {
	var slot *bool
	switch m {
	case modSearchAll:
		slot = &f.Global
	case modIgnoreCase:
		slot = &f.IgnoreCase
	case modMultiLine:
		slot = &f.Multiline
	default:
		return false, false
	}
	fresh = !*slot
	*slot = true
	return true, fresh
}
