package regexgen

import (
	"strings"
)

// Replace returns a copy of text with the leftmost match replaced by
// template, or every match when the pattern was generated with SearchAll.
//
// Inside template:
//   - ${label} is the text of the first capture registered under label;
//     an unknown label is kept literally
//   - $N (one or two digits) is capture N, $0 the whole match
//   - $$ is a literal $
//
// Example:
//
//	p := regexgen.MustCompile(
//	    regexgen.Capture(regexgen.Label("user"), regexgen.Words()), "@",
//	    regexgen.Capture(regexgen.Label("host"), regexgen.Words()),
//	)
//	p.Replace("mail root@localhost", "${host}:${user}") // "mail localhost:root"
func (p *Pattern) Replace(text, template string) string {
	all := p.FindAllStringSubmatchIndex(text, p.matchLimit())
	if len(all) == 0 {
		return text
	}
	parts := p.parseTemplate(template)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range all {
		b.WriteString(text[last:loc[0]])
		for _, part := range parts {
			if part.group < 0 {
				b.WriteString(part.text)
				continue
			}
			if i := 2 * part.group; i+1 < len(loc) && loc[i] >= 0 {
				b.WriteString(text[loc[i]:loc[i+1]])
			}
		}
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// ReplaceFunc is like Replace but computes each replacement with fn. fn
// receives the match's captures as returned by Extract, the byte offset of
// the match in text, and text itself.
func (p *Pattern) ReplaceFunc(text string, fn func(captures map[string]string, offset int, text string) string) string {
	all := p.FindAllStringSubmatchIndex(text, p.matchLimit())
	if len(all) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range all {
		b.WriteString(text[last:loc[0]])
		b.WriteString(fn(p.captureMap(text, loc), loc[0], text))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// templatePart is literal text (group < 0) or a capture reference.
type templatePart struct {
	text  string
	group int
}

// parseTemplate splits template into literal text and capture references,
// resolving labels through the capture registry.
func (p *Pattern) parseTemplate(template string) []templatePart {
	var (
		parts []templatePart
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, templatePart{text: lit.String(), group: -1})
			lit.Reset()
		}
	}
	ref := func(group int) {
		flush()
		parts = append(parts, templatePart{group: group})
	}

	n := p.NumSubexp()
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			lit.WriteByte(template[i])
			i++
			continue
		}

		next := template[i+1]

		// $$ -> $
		if next == '$' {
			lit.WriteByte('$')
			i += 2
			continue
		}

		// ${label}
		if next == '{' {
			end := strings.IndexByte(template[i+2:], '}')
			if end >= 0 {
				label := template[i+2 : i+2+end]
				if g := p.SubexpIndex(label); g > 0 {
					ref(g)
					i += end + 3
					continue
				}
			}
			lit.WriteByte('$')
			i++
			continue
		}

		// $N or $NN, preferring two digits when that capture exists
		if isDigit(next) {
			group := int(next - '0')
			width := 2
			if i+2 < len(template) && isDigit(template[i+2]) {
				if two := group*10 + int(template[i+2]-'0'); two <= n {
					group, width = two, 3
				}
			}
			if group <= n {
				ref(group)
				i += width
				continue
			}
		}

		// Unknown $ escape, treat as literal
		lit.WriteByte('$')
		i++
	}
	flush()
	return parts
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
