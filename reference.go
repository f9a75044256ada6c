package regexgen

import (
	"fmt"
	"strconv"

	"github.com/coregx/regexgen/internal/conv"
	"github.com/coregx/regexgen/internal/rawscan"
)

// backReference renders as \N, N being the index of the first capture
// registered under label earlier in the same pass.
type backReference struct {
	label string
}

func (r backReference) generate(ctx *genContext, wrap wrapLevel) string {
	index := ctx.lookup(r.label)
	if index < 0 {
		ctx.warn(warning(UnresolvedReference,
			fmt.Sprintf("SameAs(): no capture labelled %q precedes the back reference", r.label)))
		return literal("").generate(ctx, wrap)
	}
	ctx.backtracking = true
	return `\` + strconv.Itoa(index)
}

// SameAs matches the same text as a capture that appears earlier in the
// pattern. label is a Label, a string, or an integer naming an unlabeled
// capture by its index.
//
// A reference to a capture that comes later, or does not exist, renders as
// nothing and reports an UnresolvedReference warning.
//
// Example:
//
//	quote := regexgen.Capture(regexgen.Label("q"), regexgen.AnyCharOf(`"'`))
//	p := regexgen.MustCompile(quote, regexgen.Anything().Lazy(), regexgen.SameAs("q"))
//	p.String() // `(["']).*?\1`
func SameAs(label any) *Fragment {
	var name string
	switch l := label.(type) {
	case Label:
		name = string(l)
	case string:
		name = l
	default:
		digits, ok := conv.Decimal(label)
		if !ok {
			return emptyFragment(warning(InvalidArgument,
				fmt.Sprintf("SameAs(): label must be a string or an integer, got %T", label)))
		}
		name = digits
	}
	if name == "" {
		return emptyFragment(warning(InvalidArgument, "SameAs(): empty label"))
	}
	return newFragment(backReference{label: name})
}

// rawPattern is caller-supplied pattern text spliced in verbatim.
type rawPattern struct {
	source string
	report rawscan.Report
}

func newRawPattern(source string) *Fragment {
	return newFragment(rawPattern{source: source, report: rawscan.Scan(source)})
}

func (r rawPattern) generate(ctx *genContext, wrap wrapLevel) string {
	// Captures inside raw text take part in the numbering but have no
	// label, so SameAs never resolves to them.
	for range r.report.Captures {
		ctx.registerAnonymous()
	}
	if r.report.Backtracking {
		ctx.backtracking = true
	}
	switch {
	case wrap == wrapAlways:
		return wrapUnit(r.source)
	case wrap == wrapIfAlternation && r.report.Alternation:
		return "(?:" + r.source + ")"
	}
	return r.source
}

// Regex splices raw pattern text into the pattern without escaping.
// raw may be a string, a Raw, or a compiled *regexp.Regexp, *coregex.Regex
// or *regexp2.Regexp, whose source text is used.
func Regex(raw any) *Fragment {
	f, ok := rawFragment(raw)
	if !ok {
		return emptyFragment(warning(InvalidArgument,
			fmt.Sprintf("Regex(): %T is not a pattern or string", raw)))
	}
	return f
}
