// Package regexgen builds regular expressions from composable fragments.
//
// Patterns are written as trees of small, immutable fragments instead of
// dense pattern text. The generator lowers a tree to pattern text, adding
// non-capturing groups only where precedence requires them, numbering
// captures in order and resolving back-references by label.
//
// Basic usage:
//
//	p := regexgen.MustCompile(
//	    regexgen.StartOfLine(),
//	    regexgen.Capture(regexgen.Label("protocol"), "http", regexgen.Maybe("s")),
//	    "://",
//	    regexgen.Capture(regexgen.Label("path"), regexgen.Anything()),
//	    regexgen.EndOfLine(),
//	)
//	p.String() // `^(https?)://(.*)$`
//
//	m := p.Extract("https://example.com")
//	// m["protocol"] = "https"
//	// m["path"] = "example.com"
//
// Fragments are reusable: the same *Fragment may appear any number of times
// in one pattern or in many patterns. Invalid input never panics or fails
// generation. It degrades to an empty fragment and a Warning, available
// through Pattern.Warnings.
//
// Generated patterns are executed by one of two engines:
//   - github.com/coregx/coregex for RE2-compatible patterns (linear time)
//   - github.com/dlclark/regexp2 in ECMAScript mode for patterns with
//     lookaheads or back-references
//
// The engine is picked automatically; see Config to force one.
package regexgen

import (
	"go.uber.org/zap"

	"github.com/coregx/regexgen/internal/matcher"
)

// Source is the result of generation: the pattern text and everything known
// about it, before any engine is involved.
type Source struct {
	Pattern string
	Flags   Flags

	// Captures maps capture index to label. Captures[0] is "0", the whole
	// match. Unlabeled captures hold their index, captures inside raw
	// patterns hold "".
	Captures []string

	Warnings []Warning

	// Backtracking is true when the pattern needs the backtracking engine.
	Backtracking bool
}

// Generate lowers terms to pattern text.
//
// Terms are concatenated as if passed to Group. Modifiers (IgnoreCase,
// SearchAll, SearchMultiLine) may appear anywhere among the top-level terms;
// a repeated modifier is ignored with a warning.
//
// Example:
//
//	src := regexgen.Generate(regexgen.Either("a", "b").Maybe(), regexgen.IgnoreCase())
//	// src.Pattern = `(?:a|b)?`
//	// src.Flags.String() = "i"
func Generate(terms ...any) Source {
	ctx := newGenContext()
	var flags Flags
	rest := make([]any, 0, len(terms))
	for _, t := range terms {
		m, ok := t.(Modifier)
		if !ok {
			rest = append(rest, t)
			continue
		}
		switch known, fresh := flags.set(m); {
		case !known:
			ctx.warn(warning(InvalidArgument, "unknown modifier: "+string(rune(m))))
		case !fresh:
			ctx.warn(warning(RedundantModifier, "duplicated modifier: "+string(rune(m))))
		}
	}

	root := &sequence{terms: sanitizeAll(rest)}
	pattern := root.generate(ctx, wrapNone)

	return Source{
		Pattern:      pattern,
		Flags:        flags,
		Captures:     ctx.captures,
		Warnings:     ctx.warnings,
		Backtracking: ctx.backtracking,
	}
}

// Compile generates a pattern from terms and compiles it with the default
// configuration.
//
// Warnings do not make Compile fail. It returns an error only when the
// generated text is rejected by the engine, which can happen with raw
// pattern input.
//
// Example:
//
//	p, err := regexgen.Compile(regexgen.Digital().Many(), regexgen.SearchAll())
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(terms ...any) (*Pattern, error) {
	return CompileWithConfig(DefaultConfig(), terms...)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var number = regexgen.MustCompile(regexgen.Maybe("-"), regexgen.Digital().Many())
func MustCompile(terms ...any) *Pattern {
	p, err := Compile(terms...)
	if err != nil {
		panic("regexgen: Compile(`" + Generate(terms...).Pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig generates a pattern from terms and compiles it with
// config.
//
// Example:
//
//	config := regexgen.DefaultConfig()
//	config.Logger = logger
//	p, err := regexgen.CompileWithConfig(config, regexgen.Words())
func CompileWithConfig(config Config, terms ...any) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return compileSource(config, Generate(terms...))
}

func compileSource(config Config, src Source) (*Pattern, error) {
	logger := config.logger()

	m, strategy, err := matcher.Compile(src.Pattern, src.Backtracking, config.Strategy, config.matcherOptions(src.Flags))
	if err != nil {
		logger.Error("pattern rejected by engine",
			zap.String("pattern", src.Pattern),
			zap.Stringer("engine", strategy),
			zap.Error(err))
		return nil, &CompileError{Pattern: src.Pattern, Engine: strategy, Err: err}
	}

	logger.Debug("compiled pattern",
		zap.String("pattern", src.Pattern),
		zap.Stringer("flags", src.Flags),
		zap.Stringer("engine", strategy),
		zap.Int("captures", len(src.Captures)-1),
		zap.Int("warnings", len(src.Warnings)))
	for _, w := range src.Warnings {
		logger.Warn("pattern warning",
			zap.Stringer("kind", w.Kind),
			zap.String("message", w.Message))
	}

	return &Pattern{source: src, matcher: m, engine: strategy}, nil
}
