package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/coregx/regexgen"
)

const sample = `
fragments:
  octet:
    either:
      - raw: '25[0-5]'
      - raw: '2[0-4]\d'
      - raw: '1\d\d'
      - raw: '[1-9]?\d'
recipes:
  - name: ipv4
    description: dotted quad
    terms:
      - startOfLine
      - capture: [{ref: octet}]
      - text: "."
      - capture: [{ref: octet}]
      - text: "."
      - capture: [{ref: octet}]
      - text: "."
      - capture: [{ref: octet}]
      - endOfLine
    cases:
      - input: 192.168.0.1
        captures: {"1": "192", "4": "1"}
      - input: 256.1.1.1
        match: false
  - name: quoted
    flags: [searchAll]
    terms:
      - capture: [{anyCharOf: ["\"'"]}]
        label: q
      - use: anything
        lazy: true
      - sameAs: q
    cases:
      - input: "say 'hi' and \"bye\""
        captures: {q: "'"}
        replace: {template: "<${q}>", want: "say <'> and <\">"}
`

func mustParse(t *testing.T, src string) *File {
	t.Helper()
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	return f
}

func TestParse(t *testing.T) {
	f := mustParse(t, sample)
	require.Len(t, f.Recipes, 2)
	assert.Contains(t, f.Fragments, "octet")

	r, ok := f.Lookup("ipv4")
	require.True(t, ok)
	assert.Equal(t, "dotted quad", r.Description)
	assert.Len(t, r.Cases, 2)

	_, ok = f.Lookup("nope")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"no name", "recipes:\n  - terms: [digital]\n", ErrNoName},
		{"duplicate", "recipes:\n  - name: a\n  - name: a\n", ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.True(t, errors.Is(err, tt.err), "Parse() error = %v", err)
		})
	}

	_, err := Parse([]byte("recipes: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Recipes, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("recipes:\n  - name: x\n  - name: x\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, bad)
}

func TestRecipeCompile(t *testing.T) {
	f := mustParse(t, sample)

	ipv4, _ := f.Lookup("ipv4")
	p, warnings, err := ipv4.Compile(regexgen.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	octet := `(25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)`
	assert.Equal(t, "^"+strings.Repeat(octet+`\.`, 3)+octet+"$", p.String())
	assert.Equal(t, regexgen.UseCoregex, p.Engine())
	assert.Empty(t, ipv4.Check(p))

	quoted, _ := f.Lookup("quoted")
	p, warnings, err = quoted.Compile(regexgen.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, `(["']).*?\1`, p.String())
	assert.Equal(t, "g", p.Flags().String())
	assert.Equal(t, regexgen.UseBacktracker, p.Engine())
	assert.Empty(t, quoted.Check(p))
}

func TestSharedFragmentsReused(t *testing.T) {
	f := mustParse(t, sample)
	b := newBuilder(f)

	first := b.ref("octet")
	require.NotNil(t, first)
	assert.Same(t, first, b.ref("octet"))
	assert.Empty(t, b.warnings)
}

func TestNodes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"shorthand scalar", `digital`, `\d`},
		{"number scalar", `42`, `42`},
		{"number", `{number: 7, quantifier: maybe}`, `7?`},
		{"text", `{text: "a.b"}`, `a\.b`},
		{"raw", `{raw: 'a|b'}`, `a|b`},
		{"multiple", `{use: digital, multiple: [2, 4]}`, `\d{2,4}`},
		{"lazy many", `{text: ab, quantifier: many, lazy: true}`, `(?:ab)+?`},
		{"repeat", `{use: word, repeat: 3}`, `\w{3}`},
		{"any", `{use: anyChar, quantifier: any}`, `.*`},
		{"followed by", `{text: x, followedBy: [{text: y}], notFollowedBy: [{text: z}]}`, `x(?=y)(?!z)`},
		{"contains", `{text: p, contains: [{text: q}], notContains: [{text: r}]}`, `(?=q)(?!r)p`},
		{"regex override", `{text: width, regex: height}`, `height`},
		{"class", `{anyCharOf: [[a, f], [0, 9], {use: space}, "_"]}`, `[a-f0-9\s_]`},
		{"negated class", `{anyCharBut: ["<>"]}`, `[^<>]`},
		{"ascii", `{ascii: [65, "7f"]}`, `\x41\x7f`},
		{"unicode", `{unicode: [233]}`, `\u00e9`},
		{"control", `{controlChar: J}`, `\cJ`},
		{"either", `{either: [{text: a}, {text: b}]}`, `a|b`},
		{"group", `{group: [{text: a}, {text: b}], quantifier: many}`, `(?:ab)+`},
		{"capture", `{capture: [{text: a}], label: x}`, `(a)`},
		{"same as", `{group: [{capture: [{text: a}], label: x}, {sameAs: x}]}`, `(a)\1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.src), &n))

			b := newBuilder(nil)
			f := b.node(&n)
			require.NotNil(t, f)
			assert.Empty(t, b.warnings)

			src := regexgen.Generate(f)
			assert.Equal(t, tt.want, src.Pattern)
			assert.Empty(t, src.Warnings)
		})
	}
}

func TestRecipeWarnings(t *testing.T) {
	f := mustParse(t, `
recipes:
  - name: bad
    flags: [x]
    terms:
      - bogus
      - {text: a, raw: b}
      - {text: c, colour: red}
      - {ref: missing}
      - {text: d, label: l}
      - {text: e, quantifier: lots}
`)
	r, _ := f.Lookup("bad")

	terms, warnings := r.Terms()
	require.Len(t, warnings, 7)
	for _, w := range warnings {
		assert.Equal(t, regexgen.InvalidArgument, w.Kind)
	}
	assert.Contains(t, warnings[0].Message, `"bogus"`)
	assert.Contains(t, warnings[1].Message, "[text, raw]")
	assert.Contains(t, warnings[2].Message, "colour")
	assert.Contains(t, warnings[3].Message, `"missing"`)
	assert.Contains(t, warnings[4].Message, `"l"`)
	assert.Contains(t, warnings[5].Message, `"lots"`)
	assert.Contains(t, warnings[6].Message, `"x"`)

	assert.Equal(t, "cde", regexgen.Generate(terms...).Pattern)
}

func TestSharedFragmentCycle(t *testing.T) {
	f := mustParse(t, `
fragments:
  a: {group: [{ref: b}]}
  b: {ref: a}
recipes:
  - name: loop
    terms: [{ref: a}, {text: z}]
`)
	r, _ := f.Lookup("loop")

	terms, warnings := r.Terms()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "refers to itself")
	assert.Equal(t, "z", regexgen.Generate(terms...).Pattern)
}

func TestRecipeCompileError(t *testing.T) {
	f := mustParse(t, "recipes:\n  - name: broken\n    terms: [{raw: '('}]\n")
	r, _ := f.Lookup("broken")

	_, _, err := r.Compile(regexgen.DefaultConfig())
	var cerr *regexgen.CompileError
	require.True(t, errors.As(err, &cerr), "Compile() error = %v", err)
	assert.ErrorContains(t, err, `recipe "broken"`)
}

func TestCheckFailures(t *testing.T) {
	f := mustParse(t, `
recipes:
  - name: digits
    terms: [{use: digital, quantifier: many}]
    cases:
      - input: abc
      - input: "12"
        match: false
      - input: a12
        captures: {"0": "13"}
      - input: "7"
        replace: {template: "<$0>", want: "<7>"}
      - input: "7"
        replace: {template: "$0$0", want: "7"}
`)
	r, _ := f.Lookup("digits")
	p, _, err := r.Compile(regexgen.DefaultConfig())
	require.NoError(t, err)

	failures := r.Check(p)
	require.Len(t, failures, 4)

	var cases []int
	for _, fl := range failures {
		assert.Equal(t, "digits", fl.Recipe)
		cases = append(cases, fl.Case)
	}
	assert.Equal(t, []int{1, 2, 3, 5}, cases)
	assert.Contains(t, failures[0].Reason, "MatchString = false, want true")
	assert.Contains(t, failures[2].Reason, "captures mismatch")
	assert.Equal(t, `digits case 1 ("abc"): MatchString = false, want true`, failures[0].String())
}
