package recipe

import (
	"fmt"
	"strings"

	"github.com/coregx/regexgen"
)

var shorthands = map[string]func() *regexgen.Fragment{
	"startOfLine":     regexgen.StartOfLine,
	"endOfLine":       regexgen.EndOfLine,
	"wordBoundary":    regexgen.WordBoundary,
	"nonWordBoundary": regexgen.NonWordBoundary,
	"anyChar":         regexgen.AnyChar,
	"nullChar":        regexgen.NullChar,
	"backspace":       regexgen.Backspace,
	"formFeed":        regexgen.FormFeed,
	"lineFeed":        regexgen.LineFeed,
	"carriageReturn":  regexgen.CarriageReturn,
	"space":           regexgen.Space,
	"nonSpace":        regexgen.NonSpace,
	"tab":             regexgen.Tab,
	"vertTab":         regexgen.VertTab,
	"digital":         regexgen.Digital,
	"nonDigital":      regexgen.NonDigital,
	"word":            regexgen.Word,
	"nonWord":         regexgen.NonWord,
	"anything":        regexgen.Anything,
	"hexDigital":      regexgen.HexDigital,
	"lineBreak":       regexgen.LineBreak,
	"words":           regexgen.Words,
}

var modifiers = map[string]func() regexgen.Modifier{
	"ignoreCase":      regexgen.IgnoreCase,
	"i":               regexgen.IgnoreCase,
	"searchAll":       regexgen.SearchAll,
	"g":               regexgen.SearchAll,
	"searchMultiLine": regexgen.SearchMultiLine,
	"multiLine":       regexgen.SearchMultiLine,
	"m":               regexgen.SearchMultiLine,
}

// builder turns nodes into fragments. Shared fragments are built once per
// builder so every reference reuses the same *regexgen.Fragment.
type builder struct {
	file     *File
	shared   map[string]*regexgen.Fragment
	building map[string]bool
	warnings []regexgen.Warning
}

func newBuilder(f *File) *builder {
	return &builder{
		file:     f,
		shared:   make(map[string]*regexgen.Fragment),
		building: make(map[string]bool),
	}
}

func (b *builder) warn(format string, args ...any) {
	b.warnings = append(b.warnings, regexgen.Warning{
		Kind:    regexgen.InvalidArgument,
		Message: fmt.Sprintf(format, args...),
	})
}

// Terms converts the recipe into terms for regexgen.Generate or
// regexgen.Compile, modifiers included. Problems with the recipe are
// returned as warnings; the offending nodes are left out.
func (r *Recipe) Terms() ([]any, []regexgen.Warning) {
	b := newBuilder(r.file)
	terms := b.nodes(r.Terms)
	for _, name := range r.Flags {
		mod, ok := modifiers[name]
		if !ok {
			b.warn("recipe %q: unknown flag %q", r.Name, name)
			continue
		}
		terms = append(terms, mod())
	}
	return terms, b.warnings
}

// Compile builds the recipe's pattern. The returned warnings are the
// recipe's own followed by the pattern's.
func (r *Recipe) Compile(config regexgen.Config) (*regexgen.Pattern, []regexgen.Warning, error) {
	terms, warnings := r.Terms()
	p, err := regexgen.CompileWithConfig(config, terms...)
	if err != nil {
		return nil, warnings, fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	return p, append(warnings, p.Warnings()...), nil
}

func (b *builder) nodes(ns []Node) []any {
	out := make([]any, 0, len(ns))
	for i := range ns {
		if f := b.node(&ns[i]); f != nil {
			out = append(out, f)
		}
	}
	return out
}

func (b *builder) node(n *Node) *regexgen.Fragment {
	if len(n.unknown) > 0 {
		b.warn("unknown keys %s", strings.Join(n.unknown, ", "))
	}
	kinds := n.kinds()
	if len(kinds) != 1 {
		b.warn("node must have exactly one kind, got [%s]", strings.Join(kinds, ", "))
		return nil
	}
	if n.Label != "" && kinds[0] != "capture" {
		b.warn("label %q is only used by capture nodes", n.Label)
	}
	f := b.kind(n, kinds[0])
	if f == nil {
		return nil
	}
	return b.decorate(f, n)
}

func (b *builder) kind(n *Node, kind string) *regexgen.Fragment {
	switch kind {
	case "use":
		factory, ok := shorthands[n.Use]
		if !ok {
			b.warn("unknown fragment %q", n.Use)
			return nil
		}
		return factory()
	case "ref":
		return b.ref(n.Ref)
	case "text":
		return regexgen.Text(*n.Text)
	case "raw":
		return regexgen.Regex(regexgen.Raw(*n.Raw))
	case "number":
		return regexgen.Group(*n.Number)
	case "anyCharOf":
		return regexgen.AnyCharOf(b.members(n.AnyCharOf)...)
	case "anyCharBut":
		return regexgen.AnyCharBut(b.members(n.AnyCharBut)...)
	case "either":
		return regexgen.Either(b.nodes(n.Either)...)
	case "group":
		return regexgen.Group(b.nodes(n.Group)...)
	case "capture":
		terms := b.nodes(n.Capture)
		if n.Label != "" {
			terms = append([]any{regexgen.Label(n.Label)}, terms...)
		}
		return regexgen.Capture(terms...)
	case "sameAs":
		return regexgen.SameAs(n.SameAs)
	case "ascii":
		return regexgen.ASCII(n.ASCII...)
	case "unicode":
		return regexgen.Unicode(n.Unicode...)
	case "controlChar":
		return regexgen.ControlChar(n.ControlChar)
	}
	return nil
}

func (b *builder) ref(name string) *regexgen.Fragment {
	if f, ok := b.shared[name]; ok {
		return f
	}
	if b.file == nil {
		b.warn("unknown shared fragment %q", name)
		return nil
	}
	n, ok := b.file.Fragments[name]
	if !ok {
		b.warn("unknown shared fragment %q", name)
		return nil
	}
	if b.building[name] {
		b.warn("shared fragment %q refers to itself", name)
		return nil
	}
	b.building[name] = true
	f := b.node(&n)
	delete(b.building, name)
	if f != nil {
		b.shared[name] = f
	}
	return f
}

func (b *builder) members(ms []Member) []any {
	out := make([]any, 0, len(ms))
	for _, m := range ms {
		switch {
		case m.Node != nil:
			if f := b.node(m.Node); f != nil {
				out = append(out, f)
			}
		case m.Range != nil:
			out = append(out, m.Range)
		default:
			out = append(out, m.Chars)
		}
	}
	return out
}

func (b *builder) decorate(f *regexgen.Fragment, n *Node) *regexgen.Fragment {
	switch n.Quantifier {
	case "":
	case "any":
		f = f.Any()
	case "many":
		f = f.Many()
	case "maybe":
		f = f.Maybe()
	default:
		b.warn("unknown quantifier %q", n.Quantifier)
	}
	if n.Repeat != nil {
		f = f.Repeat(*n.Repeat)
	}
	if n.Multiple != nil {
		f = f.Multiple(n.Multiple...)
	}
	if n.Lazy {
		f = f.Lazy()
	}
	if n.Contains != nil {
		f = f.Contains(b.nodes(n.Contains)...)
	}
	if n.NotContains != nil {
		f = f.NotContains(b.nodes(n.NotContains)...)
	}
	if n.FollowedBy != nil {
		f = f.FollowedBy(b.nodes(n.FollowedBy)...)
	}
	if n.NotFollowedBy != nil {
		f = f.NotFollowedBy(b.nodes(n.NotFollowedBy)...)
	}
	if n.Regex != nil {
		f = f.Regex(regexgen.Raw(*n.Regex))
	}
	return f
}
