package regexgen

import (
	"fmt"
	"strings"

	"github.com/coregx/regexgen/internal/conv"
)

func escape(expr string) *Fragment {
	return newFragment(literal(expr))
}

// StartOfLine matches at the start of the text, or of each line with
// SearchMultiLine.
func StartOfLine() *Fragment { return escape("^") }

// EndOfLine matches at the end of the text, or of each line with
// SearchMultiLine.
func EndOfLine() *Fragment { return escape("$") }

// WordBoundary matches between a word and a non-word character.
func WordBoundary() *Fragment { return escape(`\b`) }

// NonWordBoundary matches where WordBoundary does not.
func NonWordBoundary() *Fragment { return escape(`\B`) }

// AnyChar matches any character except line terminators.
func AnyChar() *Fragment { return escape(".") }

// Character escapes and shorthand classes.

func NullChar() *Fragment       { return escape(`\0`) }
func Backspace() *Fragment      { return escape(`[\b]`) }
func FormFeed() *Fragment       { return escape(`\f`) }
func LineFeed() *Fragment       { return escape(`\n`) }
func CarriageReturn() *Fragment { return escape(`\r`) }
func Space() *Fragment          { return escape(`\s`) }
func NonSpace() *Fragment       { return escape(`\S`) }
func Tab() *Fragment            { return escape(`\t`) }
func VertTab() *Fragment        { return escape(`\v`) }
func Digital() *Fragment        { return escape(`\d`) }
func NonDigital() *Fragment     { return escape(`\D`) }
func Word() *Fragment           { return escape(`\w`) }
func NonWord() *Fragment        { return escape(`\W`) }

// Anything matches any run of characters on one line, possibly empty.
func Anything() *Fragment { return AnyChar().Any() }

// HexDigital matches one hexadecimal digit.
func HexDigital() *Fragment { return escape(`[0-9A-Fa-f]`) }

// Words matches one or more word characters.
func Words() *Fragment { return Word().Many() }

// LineBreak matches a CRLF, CR or LF line break.
func LineBreak() *Fragment {
	return Either(Group(CarriageReturn(), LineFeed()), CarriageReturn(), LineFeed())
}

// Text matches s literally.
func Text(s string) *Fragment {
	return newFragment(literal(quote(s)))
}

// Any matches term zero or more times. Unlike the method of the same name
// it keeps the term's own quantifier and lookaheads, grouping it first.
//
// Example:
//
//	regexgen.Any("ab").String() // `(?:ab)*`
func Any(term any) *Fragment {
	return quantified(term).Any()
}

// Many matches term one or more times.
func Many(term any) *Fragment {
	return quantified(term).Many()
}

// Maybe matches term zero or one time.
func Maybe(term any) *Fragment {
	return quantified(term).Maybe()
}

func quantified(term any) *Fragment {
	f := sanitize(term)
	if f.decorated() {
		return Group(f)
	}
	return f
}

// ASCII matches the characters with the given codes, one \xhh escape each.
// A code is an integer up to 0xFF or a string of two hex digits.
//
// Example:
//
//	regexgen.ASCII(99, "7f").String() // `\x63\x7f`
func ASCII(codes ...any) *Fragment {
	return codePoints("ASCII", `\x`, 2, codes)
}

// Unicode matches the characters with the given BMP code points, one
// \uhhhh escape each. A code is an integer up to 0xFFFF or a string of four
// hex digits.
func Unicode(codes ...any) *Fragment {
	return codePoints("Unicode", `\u`, 4, codes)
}

func codePoints(fn, prefix string, digits int, codes []any) *Fragment {
	if len(codes) == 0 {
		return emptyFragment(warning(InvalidArgument,
			fmt.Sprintf("%s(): no character codes given", fn)))
	}
	var (
		b   strings.Builder
		bad []string
	)
	for _, c := range codes {
		hex, ok := hexCode(c, digits)
		if !ok {
			bad = append(bad, fmt.Sprintf("%v", c))
			continue
		}
		b.WriteString(prefix)
		b.WriteString(hex)
	}
	f := newFragment(literal(b.String()))
	if len(bad) > 0 {
		f.warnings = []Warning{warning(InvalidArgument,
			fmt.Sprintf("%s(): not valid %d hex digit codes: %s", fn, digits, strings.Join(bad, ", ")))}
	}
	return f
}

func hexCode(code any, digits int) (string, bool) {
	if s, ok := code.(string); ok {
		return s, conv.IsHex(s, digits)
	}
	n, ok := conv.Int64(code)
	if !ok {
		return "", false
	}
	return conv.Hex(n, digits)
}

// ControlChar matches the control character of an ASCII letter: \cX.
func ControlChar(letter string) *Fragment {
	if len(letter) != 1 || !isASCIILetter(letter[0]) {
		return emptyFragment(warning(InvalidArgument,
			fmt.Sprintf("ControlChar(): %q is not a single ASCII letter", letter)))
	}
	return escape(`\c` + letter)
}
