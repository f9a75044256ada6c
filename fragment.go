package regexgen

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"github.com/coregx/regexgen/internal/conv"
)

// node is the body of a fragment: literal text, a sequence, a capture,
// a back-reference or a raw pattern.
type node interface {
	generate(ctx *genContext, wrap wrapLevel) string
}

// literal is pre-escaped pattern text.
type literal string

func (l literal) generate(_ *genContext, wrap wrapLevel) string {
	if wrap == wrapAlways {
		return wrapUnit(string(l))
	}
	return string(l)
}

type quantKind uint8

const (
	quantNone quantKind = iota
	quantStar
	quantPlus
	quantOptional
	quantExact
	quantRange
)

type quantifier struct {
	kind quantKind
	min  int
	max  int // negative: unbounded
}

func (q quantifier) String() string {
	switch q.kind {
	case quantStar:
		return "*"
	case quantPlus:
		return "+"
	case quantOptional:
		return "?"
	case quantExact:
		return "{" + strconv.Itoa(q.min) + "}"
	case quantRange:
		if q.max < 0 {
			return "{" + strconv.Itoa(q.min) + ",}"
		}
		return "{" + strconv.Itoa(q.min) + "," + strconv.Itoa(q.max) + "}"
	}
	return ""
}

// Fragment is an immutable piece of a pattern.
//
// Fragments are built with the package factories (Text, AnyCharOf, Capture,
// ...) and decorated with methods that return a new Fragment and never modify
// the receiver, so one Fragment can be reused in many places and many
// patterns. Lowering to pattern text happens only when a pattern is generated.
//
// Example:
//
//	digits := regexgen.Digital().Many()
//	p := regexgen.MustCompile(digits, ".", digits)
//	p.String() // `\d+\.\d+`
type Fragment struct {
	body     node
	quant    quantifier
	lazy     bool
	pre      []*Fragment // lookaheads before the body
	post     []*Fragment // lookaheads after the body
	override *Fragment
	warnings []Warning // reported each time the fragment is generated
}

func newFragment(body node) *Fragment {
	return &Fragment{body: body}
}

// emptyFragment is the degraded result of invalid input.
func emptyFragment(w Warning) *Fragment {
	return &Fragment{body: literal(""), warnings: []Warning{w}}
}

func (f *Fragment) clone() *Fragment {
	c := *f
	return &c
}

func (f *Fragment) withWarning(w Warning) *Fragment {
	c := f.clone()
	c.warnings = append(slices.Clip(f.warnings), w)
	return c
}

func (f *Fragment) withQuantifier(q quantifier) *Fragment {
	if lit, ok := f.body.(literal); ok && f.override == nil && isAssertion(string(lit)) {
		return f.withWarning(warning(InvalidArgument,
			fmt.Sprintf("quantifier %s: nothing to repeat after %s", q, lit)))
	}
	c := f.clone()
	c.quant = q
	return c
}

// isAssertion reports whether expr is an anchor or word boundary, which
// matches a position and cannot be quantified.
func isAssertion(expr string) bool {
	switch expr {
	case "^", "$", `\b`, `\B`:
		return true
	}
	return false
}

func (f *Fragment) decorated() bool {
	return f.quant.kind != quantNone || len(f.pre) > 0 || len(f.post) > 0 || f.override != nil
}

func (f *Fragment) intrinsicWrap() wrapLevel {
	switch {
	case f.quant.kind != quantNone:
		return wrapAlways
	case len(f.pre) > 0 || len(f.post) > 0:
		return wrapIfAlternation
	}
	return wrapNone
}

func (f *Fragment) generate(ctx *genContext, wrap wrapLevel) string {
	ctx.warn(f.warnings...)
	if f.override != nil {
		return f.override.generate(ctx, wrap)
	}

	var b strings.Builder
	for _, la := range f.pre {
		b.WriteString(la.generate(ctx, wrapNone))
	}
	b.WriteString(f.body.generate(ctx, max(wrap, f.intrinsicWrap())))
	if f.quant.kind != quantNone {
		b.WriteString(f.quant.String())
		if f.lazy {
			b.WriteByte('?')
		}
	}
	for _, la := range f.post {
		b.WriteString(la.generate(ctx, wrapNone))
	}
	return b.String()
}

// String renders the fragment on its own, as the only term of a pattern.
// Back-references to captures outside the fragment do not resolve.
func (f *Fragment) String() string {
	return f.generate(newGenContext(), wrapNone)
}

// Any repeats the fragment zero or more times (*).
// It replaces any quantifier the fragment already has.
func (f *Fragment) Any() *Fragment {
	return f.withQuantifier(quantifier{kind: quantStar})
}

// Many repeats the fragment one or more times (+).
func (f *Fragment) Many() *Fragment {
	return f.withQuantifier(quantifier{kind: quantPlus})
}

// Maybe makes the fragment optional (?).
func (f *Fragment) Maybe() *Fragment {
	return f.withQuantifier(quantifier{kind: quantOptional})
}

// Repeat repeats the fragment exactly times[0] times ({n}). Without an
// argument it behaves like Many.
func (f *Fragment) Repeat(times ...int) *Fragment {
	switch len(times) {
	case 0:
		return f.Many()
	case 1:
		if times[0] < 0 {
			return f.withWarning(warning(InvalidArgument,
				fmt.Sprintf("Repeat(): count must not be negative, got %d", times[0])))
		}
		return f.withQuantifier(quantifier{kind: quantExact, min: times[0]})
	}
	return f.withWarning(warning(InvalidArgument,
		fmt.Sprintf("Repeat(): expects at most one count, got %d", len(times))))
}

// Multiple repeats the fragment between bounds[0] and bounds[1] times.
//
//	Multiple()     *
//	Multiple(1)    +
//	Multiple(0, 1) ?
//	Multiple(n)    {n,}
//	Multiple(n, m) {n,m}
func (f *Fragment) Multiple(bounds ...int) *Fragment {
	lo, hi := 0, -1
	switch len(bounds) {
	case 0:
	case 1:
		lo = bounds[0]
	case 2:
		lo, hi = bounds[0], bounds[1]
		if hi < lo {
			return f.withWarning(warning(InvalidArgument,
				fmt.Sprintf("Multiple(): upper bound %d is below lower bound %d", hi, lo)))
		}
	default:
		return f.withWarning(warning(InvalidArgument,
			fmt.Sprintf("Multiple(): expects at most two bounds, got %d", len(bounds))))
	}
	if lo < 0 {
		return f.withWarning(warning(InvalidArgument,
			fmt.Sprintf("Multiple(): bounds must not be negative, got %d", lo)))
	}

	switch {
	case hi < 0 && lo == 0:
		return f.Any()
	case hi < 0 && lo == 1:
		return f.Many()
	case lo == 0 && hi == 1:
		return f.Maybe()
	}
	return f.withQuantifier(quantifier{kind: quantRange, min: lo, max: hi})
}

// Greedy makes the quantifier match as much as possible. This is the default.
func (f *Fragment) Greedy() *Fragment {
	c := f.clone()
	c.lazy = false
	return c
}

// Lazy makes the quantifier match as little as possible. It has no effect
// on a fragment without a quantifier.
func (f *Fragment) Lazy() *Fragment {
	c := f.clone()
	c.lazy = true
	return c
}

// Reluctant is an alias of Lazy.
func (f *Fragment) Reluctant() *Fragment {
	return f.Lazy()
}

// Contains requires the sequence of terms to match somewhere ahead,
// without consuming input: (?=terms) in front of the fragment.
// It is usually combined with a fragment like Anything().Lazy() leading the
// terms.
func (f *Fragment) Contains(terms ...any) *Fragment {
	c := f.clone()
	c.pre = append(slices.Clip(f.pre), lookahead("(?=", terms))
	return c
}

// NotContains forbids the sequence of terms ahead: (?!terms) in front of the
// fragment.
func (f *Fragment) NotContains(terms ...any) *Fragment {
	c := f.clone()
	c.pre = append(slices.Clip(f.pre), lookahead("(?!", terms))
	return c
}

// FollowedBy requires the terms right after the fragment: (?=terms) behind it.
func (f *Fragment) FollowedBy(terms ...any) *Fragment {
	c := f.clone()
	c.post = append(slices.Clip(f.post), lookahead("(?=", terms))
	return c
}

// NotFollowedBy forbids the terms right after the fragment.
func (f *Fragment) NotFollowedBy(terms ...any) *Fragment {
	c := f.clone()
	c.post = append(slices.Clip(f.post), lookahead("(?!", terms))
	return c
}

// Regex replaces the fragment's whole rendering, decorations included, with
// raw pattern text. The fragment's own captures are no longer registered;
// those inside the raw text are counted instead.
//
// It is meant for hand-tuned alternatives of a fragment built for
// readability.
func (f *Fragment) Regex(raw any) *Fragment {
	override, ok := rawFragment(raw)
	if !ok {
		return f.withWarning(warning(InvalidArgument,
			fmt.Sprintf("Regex(): %T is not a pattern or string", raw)))
	}
	c := f.clone()
	c.override = override
	return c
}

func lookahead(open string, terms []any) *Fragment {
	return newFragment(&sequence{
		terms:     sanitizeAll(terms),
		prefix:    open,
		suffix:    ")",
		assertion: true,
	})
}

// Label names a capture. It is only recognised as the first argument of
// Capture.
type Label string

// Raw is verbatim pattern text. It is spliced into the output unescaped.
type Raw string

// sanitize converts a term into a fragment.
//
// Accepted terms: *Fragment, string (literal text), any Go integer (its
// decimal digits), and raw patterns (Raw, *regexp.Regexp, *coregex.Regex,
// *regexp2.Regexp). Anything else degrades to an empty fragment.
func sanitize(term any) *Fragment {
	switch t := term.(type) {
	case *Fragment:
		if t == nil {
			return emptyFragment(warning(InvalidArgument, "nil fragment"))
		}
		return t
	case string:
		return newFragment(literal(quote(t)))
	case Modifier:
		return emptyFragment(warning(InvalidArgument,
			fmt.Sprintf("modifier %q is only allowed as a top-level term", rune(t))))
	case Label:
		return emptyFragment(warning(InvalidArgument,
			fmt.Sprintf("label %q is only allowed as the first argument of Capture()", string(t))))
	}
	if f, ok := rawFragment(term); ok {
		return f
	}
	if digits, ok := conv.Decimal(term); ok {
		return newFragment(literal(digits))
	}
	return emptyFragment(warning(InvalidArgument,
		fmt.Sprintf("invalid regular expression term: %#v", term)))
}

func sanitizeAll(terms []any) []*Fragment {
	out := make([]*Fragment, len(terms))
	for i, t := range terms {
		out[i] = sanitize(t)
	}
	return out
}

// rawFragment accepts the raw pattern forms; plain strings count as raw here.
func rawFragment(raw any) (*Fragment, bool) {
	switch r := raw.(type) {
	case Raw:
		return newRawPattern(string(r)), true
	case string:
		return newRawPattern(r), true
	case *regexp.Regexp:
		if r != nil {
			return newRawPattern(r.String()), true
		}
	case *coregex.Regex:
		if r != nil {
			return newRawPattern(r.String()), true
		}
	case *regexp2.Regexp:
		if r != nil {
			return newRawPattern(r.String()), true
		}
	}
	return nil, false
}

// quote escapes the metacharacters of literal text.
func quote(s string) string {
	const special = `$()*+.?[\^{|`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
