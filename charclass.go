package regexgen

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/coregx/regexgen/internal/conv"
)

// AnyCharOf matches one character from the members.
//
// Members may be:
//   - strings, each character taken literally
//   - range pairs such as []string{"a", "f"}, []int{0, 9} or
//     [2]rune{'a', 'f'}; integer endpoints are digits 0-9
//   - fragments that render a single class or class escape, such as
//     Digital() or HexDigital(), whose members are merged in
//
// '-' and '^' are moved where they are literal, so member order never
// changes the meaning of the class. Invalid members are dropped with an
// UnsafeClassMember warning.
//
// Example:
//
//	regexgen.AnyCharOf([]string{"a", "f"}, regexgen.Digital(), "_-").String() // `[-a-f\d_]`
func AnyCharOf(members ...any) *Fragment {
	return charClass("AnyCharOf", members, false)
}

// AnyCharBut matches one character that is not one of the members.
// Members are interpreted as in AnyCharOf.
func AnyCharBut(members ...any) *Fragment {
	return charClass("AnyCharBut", members, true)
}

func charClass(fn string, members []any, negated bool) *Fragment {
	body, warnings := mergeClassMembers(members, !negated)
	if body == "" {
		warnings = append(warnings, warning(UnsafeClassMember,
			fn+"(): no valid character class members"))
		return &Fragment{body: literal(""), warnings: warnings}
	}
	open := "["
	if negated {
		open = "[^"
	}
	return &Fragment{body: literal(open + body + "]"), warnings: warnings}
}

// mergeClassMembers builds the body of a bracket expression.
//
// Literal '-' and '^' characters are pulled out of every string member and
// re-added at the only places they cannot be misread: '-' first, '^' last.
// If nothing else survives, the lone character is escaped instead.
func mergeClassMembers(members []any, positive bool) (string, []Warning) {
	var (
		sets     []string
		warnings []Warning
		hyphen   bool
		caret    bool
	)
	for _, m := range members {
		switch v := m.(type) {
		case string:
			if v == "" {
				warnings = append(warnings, warning(UnsafeClassMember, "empty character class member"))
				continue
			}
			run, h, c := classRun(v)
			hyphen = hyphen || h
			caret = caret || c
			if run != "" {
				sets = append(sets, run)
			}
		case *Fragment:
			if v == nil {
				warnings = append(warnings, warning(UnsafeClassMember, "nil fragment in character class"))
				continue
			}
			body, ws, ok := nestedClassBody(v)
			warnings = append(warnings, ws...)
			if !ok {
				warnings = append(warnings, warning(UnsafeClassMember,
					fmt.Sprintf("fragment %q cannot be merged into a character class", v.String())))
				continue
			}
			body, h := stripHyphens(body)
			hyphen = hyphen || h
			if body != "" {
				sets = append(sets, body)
			}
		default:
			lo, hi, ok := classRange(m)
			if !ok {
				warnings = append(warnings, warning(UnsafeClassMember,
					fmt.Sprintf("invalid character class member: %v", m)))
				continue
			}
			sets = append(sets, lo+"-"+hi)
		}
	}

	body := strings.Join(sets, "")
	if body == "" {
		var lone string
		if hyphen {
			lone += "-"
		}
		if caret {
			lone += "^"
		}
		if positive && len(lone) == 1 {
			return quote(lone), warnings
		}
		return lone, warnings
	}
	if hyphen {
		body = "-" + body
	}
	if caret {
		body += "^"
	}
	return body, warnings
}

// classRun escapes a literal member and strips its '-' and '^'.
func classRun(s string) (run string, hyphen, caret bool) {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '-':
			hyphen = true
		case '^':
			caret = true
		case ']', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), hyphen, caret
}

// stripHyphens removes the literal '-' a merged class may carry at either
// end, where it would turn into a range operator next to other members.
func stripHyphens(body string) (string, bool) {
	found := false
	if strings.HasPrefix(body, "-") {
		body, found = body[1:], true
	}
	if strings.HasSuffix(body, "-") && !endsEscaped(body[:len(body)-1]) {
		body, found = body[:len(body)-1], true
	}
	return body, found
}

// endsEscaped reports whether s ends in an odd run of backslashes, i.e.
// whether the byte that follows s is escaped.
func endsEscaped(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// classRange validates a two-endpoint range member and renders its
// endpoints. The lower endpoint must not exceed the upper one.
func classRange(m any) (lo, hi string, ok bool) {
	var ends []any
	switch v := m.(type) {
	case []string:
		ends = toAny(v)
	case [2]string:
		ends = toAny(v[:])
	case []int:
		ends = toAny(v)
	case [2]int:
		ends = toAny(v[:])
	case []rune:
		ends = toAny(v)
	case [2]rune:
		ends = toAny(v[:])
	case []any:
		ends = v
	case [2]any:
		ends = v[:]
	default:
		return "", "", false
	}
	if len(ends) != 2 {
		return "", "", false
	}
	lo, loRune, ok := classEndpoint(ends[0])
	if !ok {
		return "", "", false
	}
	hi, hiRune, ok := classEndpoint(ends[1])
	if !ok || loRune > hiRune {
		return "", "", false
	}
	return lo, hi, true
}

func toAny[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// classEndpoint decodes a range endpoint: a single character, a digit 0-9
// given as an int, or one of the escapes \xhh, \uhhhh, \cX, \b, \f, \n, \r,
// \t, \v and \0.
func classEndpoint(v any) (text string, r rune, ok bool) {
	switch e := v.(type) {
	case int:
		if e < 0 || e > 9 {
			return "", 0, false
		}
		return string(rune('0' + e)), rune('0' + e), true
	case rune:
		if !utf8.ValidRune(e) {
			return "", 0, false
		}
		return classChar(e), e, true
	case string:
		return classEscapeEndpoint(e)
	}
	return "", 0, false
}

func classEscapeEndpoint(s string) (string, rune, bool) {
	if utf8.RuneCountInString(s) == 1 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return "", 0, false
		}
		return classChar(r), r, true
	}
	if len(s) < 2 || s[0] != '\\' {
		return "", 0, false
	}
	switch {
	case len(s) == 4 && s[1] == 'x' && conv.IsHex(s[2:], 2),
		len(s) == 6 && s[1] == 'u' && conv.IsHex(s[2:], 4):
		r, ok := conv.ParseHex(s[2:])
		return s, r, ok
	case len(s) == 3 && s[1] == 'c' && isASCIILetter(s[2]):
		return s, rune(s[2] % 32), true
	case len(s) == 2:
		if r, ok := controlEscapes[s[1]]; ok {
			return s, r, true
		}
	}
	return "", 0, false
}

var controlEscapes = map[byte]rune{
	'0': 0,
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// classChar escapes the characters that are special inside brackets.
func classChar(r rune) string {
	switch r {
	case ']', '\\', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// nestedClassBody extracts what a fragment contributes to an enclosing class:
// the inside of a single bracket expression, a class escape or a single
// character. Decorations that cannot exist inside a class are dropped with
// a warning.
func nestedClassBody(f *Fragment) (string, []Warning, bool) {
	if f == nil || f.override != nil {
		return "", nil, false
	}
	lit, ok := f.body.(literal)
	if !ok {
		return "", nil, false
	}
	body := string(lit)

	warnings := slices.Clone(f.warnings)
	if f.quant.kind != quantNone {
		warnings = append(warnings, warning(IgnoredDecoration,
			fmt.Sprintf("quantifier %s dropped inside character class", f.quant)))
	}
	if len(f.pre) > 0 || len(f.post) > 0 {
		warnings = append(warnings, warning(IgnoredDecoration,
			"lookahead dropped inside character class"))
	}

	switch {
	case len(body) >= 2 && body[0] == '[' && isUnitTerm(body):
		inner := body[1 : len(body)-1]
		if strings.HasPrefix(inner, "^") {
			warnings = append(warnings, warning(IgnoredDecoration,
				fmt.Sprintf("negation of %s dropped inside character class", body)))
			inner = inner[1:]
		}
		return inner, warnings, inner != ""
	case body == "." || body == "^" || body == "$":
		return "", warnings, false
	case utf8.RuneCountInString(body) == 1:
		r, _ := utf8.DecodeRuneInString(body)
		return classChar(r), warnings, true
	case classEscape.MatchString(body):
		return body, warnings, true
	}
	return "", warnings, false
}
