package regexgen

import (
	"testing"
)

func TestCharClassMerge(t *testing.T) {
	tests := []struct {
		name     string
		f        *Fragment
		want     string
		warnings int
	}{
		{"literal run", AnyCharOf("abc"), `[abc]`, 0},
		{
			"punctuation",
			AnyCharOf(`~!@#$%^&*()-+{}[]<>,./;:|\`),
			`[-~!@#$%&*()+{}[\]<>,./;:|\\^]`,
			0,
		},
		{"caret alone", AnyCharOf("^"), `[\^]`, 0},
		{"hyphen alone", AnyCharOf("-"), `[-]`, 0},
		{"caret and hyphen", AnyCharOf("^", "-"), `[-^]`, 0},
		{"caret and hyphen negated", AnyCharBut("^-"), `[^-^]`, 0},
		{"relocation across members", AnyCharOf("a-", "^b"), `[-ab^]`, 0},
		{"negated", AnyCharBut("<"), `[^<]`, 0},
		{"string range", AnyCharOf([]string{"a", "f"}), `[a-f]`, 0},
		{"array range", AnyCharOf([2]string{"A", "F"}), `[A-F]`, 0},
		{"digit range", AnyCharOf([]int{0, 9}), `[0-9]`, 0},
		{"rune range", AnyCharOf([2]rune{'a', 'z'}), `[a-z]`, 0},
		{"mixed range", AnyCharOf([]any{0, "9"}), `[0-9]`, 0},
		{"escape range", AnyCharOf([]string{`\x41`, `\x5a`}), `[\x41-\x5a]`, 0},
		{"unicode range", AnyCharOf([]string{`À`, `ÿ`}), `[À-ÿ]`, 0},
		{"sensitive endpoints", AnyCharOf([]string{"]", "^"}), `[\]-\^]`, 0},
		{"several ranges", AnyCharOf([]string{"0", "9"}, []string{"A", "F"}, []string{"a", "f"}), `[0-9A-Fa-f]`, 0},
		{"digit out of range", AnyCharOf([]int{10, 9}, []string{"a", "f"}), `[a-f]`, 1},
		{
			"wrong arity",
			AnyCharOf([]string{"0", "9"}, []string{"a"}, []string{"a", "f", "m", "n"}),
			`[0-9]`,
			2,
		},
		{"inverted range", AnyCharOf("x", []string{"z", "a"}), `[x]`, 1},
		{"multi char endpoint", AnyCharOf("x", []string{"ab", "c"}), `[x]`, 1},
		{"empty member", AnyCharOf("x", ""), `[x]`, 1},
		{"unsupported member", AnyCharOf("x", 3.5), `[x]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Generate(tt.f)
			if src.Pattern != tt.want {
				t.Errorf("Pattern = %q, want %q", src.Pattern, tt.want)
			}
			if len(src.Warnings) != tt.warnings {
				t.Errorf("Warnings = %v, want %d", src.Warnings, tt.warnings)
			}
			for _, w := range src.Warnings {
				if w.Kind != UnsafeClassMember {
					t.Errorf("warning kind = %v, want UnsafeClassMember", w.Kind)
				}
			}
		})
	}
}

func TestCharClassNested(t *testing.T) {
	tests := []struct {
		name  string
		f     *Fragment
		want  string
		kinds []WarningKind
	}{
		{"shorthand", AnyCharOf(Digital(), "_"), `[\d_]`, nil},
		{"class", AnyCharOf(HexDigital(), "x"), `[0-9A-Fa-fx]`, nil},
		{"backspace", AnyCharOf([]string{"a", "z"}, Backspace()), `[a-z\b]`, nil},
		{"escaped literal", AnyCharOf(Text(".")), `[\.]`, nil},
		{"single char", AnyCharOf(Text("a"), "b"), `[ab]`, nil},
		{"hex escape", AnyCharOf(ASCII(0x41)), `[\x41]`, nil},
		{"leading hyphen moved", AnyCharOf("x", AnyCharOf("-a")), `[-xa]`, nil},
		{"quantifier dropped", AnyCharOf(Digital().Many()), `[\d]`, []WarningKind{IgnoredDecoration}},
		{"lookahead dropped", AnyCharOf(Digital().FollowedBy("a")), `[\d]`, []WarningKind{IgnoredDecoration}},
		{"negation dropped", AnyCharOf(AnyCharBut("a")), `[a]`, []WarningKind{IgnoredDecoration}},
		{"wildcard rejected", AnyCharOf("x", AnyChar()), `[x]`, []WarningKind{UnsafeClassMember}},
		{"anchor rejected", AnyCharOf("x", StartOfLine()), `[x]`, []WarningKind{UnsafeClassMember}},
		{"word boundary rejected", AnyCharOf("x", WordBoundary()), `[x]`, []WarningKind{UnsafeClassMember}},
		{"sequence rejected", AnyCharOf("x", Group("a", "b")), `[x]`, []WarningKind{UnsafeClassMember}},
		{"literal run rejected", AnyCharOf("x", Text("ab")), `[x]`, []WarningKind{UnsafeClassMember}},
		{"override rejected", AnyCharOf("x", Digital().Regex("[0-9]")), `[x]`, []WarningKind{UnsafeClassMember}},
		{"nil rejected", AnyCharOf("x", (*Fragment)(nil)), `[x]`, []WarningKind{UnsafeClassMember}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Generate(tt.f)
			if src.Pattern != tt.want {
				t.Errorf("Pattern = %q, want %q", src.Pattern, tt.want)
			}
			if len(src.Warnings) != len(tt.kinds) {
				t.Fatalf("Warnings = %v, want kinds %v", src.Warnings, tt.kinds)
			}
			for i, w := range src.Warnings {
				if w.Kind != tt.kinds[i] {
					t.Errorf("Warnings[%d].Kind = %v, want %v", i, w.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestCharClassEmpty(t *testing.T) {
	tests := []struct {
		name string
		f    *Fragment
	}{
		{"no members", AnyCharOf()},
		{"only invalid", AnyCharOf([]string{"z", "a"})},
		{"negated no members", AnyCharBut()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Generate(tt.f)
			if src.Pattern != "" {
				t.Errorf("Pattern = %q, want empty", src.Pattern)
			}
			if len(src.Warnings) == 0 {
				t.Fatal("expected warnings")
			}
			last := src.Warnings[len(src.Warnings)-1]
			if last.Kind != UnsafeClassMember {
				t.Errorf("last warning kind = %v, want UnsafeClassMember", last.Kind)
			}
		})
	}
}

func TestClassEndpoint(t *testing.T) {
	tests := []struct {
		in       any
		wantText string
		wantRune rune
		ok       bool
	}{
		{"a", "a", 'a', true},
		{"-", `\-`, '-', true},
		{"é", "é", 'é', true},
		{5, "5", '5', true},
		{10, "", 0, false},
		{'x', "x", 'x', true},
		{`\x41`, `\x41`, 'A', true},
		{`é`, `é`, 'é', true},
		{`\cJ`, `\cJ`, '\n', true},
		{`\n`, `\n`, '\n', true},
		{`\t`, `\t`, '\t', true},
		{`\d`, "", 0, false},
		{`\xZZ`, "", 0, false},
		{"ab", "", 0, false},
		{"", "", 0, false},
		{1.5, "", 0, false},
	}

	for _, tt := range tests {
		text, r, ok := classEndpoint(tt.in)
		if ok != tt.ok || text != tt.wantText || r != tt.wantRune {
			t.Errorf("classEndpoint(%#v) = %q, %q, %v; want %q, %q, %v",
				tt.in, text, r, ok, tt.wantText, tt.wantRune, tt.ok)
		}
	}
}
