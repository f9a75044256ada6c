package regexgen_test

import (
	"fmt"
	"strings"

	"github.com/coregx/regexgen"
)

// ExampleCompile builds a URL pattern and extracts its labelled parts.
func ExampleCompile() {
	p, err := regexgen.Compile(
		regexgen.StartOfLine(),
		regexgen.Capture(regexgen.Label("protocol"), "http", regexgen.Maybe("s")),
		"://",
		regexgen.Capture(regexgen.Label("path"), regexgen.Anything()),
		regexgen.EndOfLine(),
	)
	if err != nil {
		panic(err)
	}

	m := p.Extract("https://example.com")
	fmt.Println(p)
	fmt.Println(m["protocol"], m["path"])
	// Output:
	// ^(https?)://(.*)$
	// https example.com
}

// ExampleGenerate shows grouping added only where precedence needs it.
func ExampleGenerate() {
	src := regexgen.Generate(
		"#",
		regexgen.Either("red", "green").Maybe(),
		regexgen.IgnoreCase(),
	)
	fmt.Println(src.Pattern, src.Flags)
	// Output: #(?:red|green)? i
}

// ExampleSameAs matches a quoted string with either quote character.
func ExampleSameAs() {
	p := regexgen.MustCompile(
		regexgen.Capture(regexgen.Label("quote"), regexgen.AnyCharOf(`"'`)),
		regexgen.Anything().Lazy(),
		regexgen.SameAs("quote"),
	)

	fmt.Println(p)
	fmt.Println(p.Engine())
	fmt.Println(p.FindString(`say 'hi "there"' now`))
	// Output:
	// (["']).*?\1
	// UseBacktracker
	// 'hi "there"'
}

// ExampleAnyCharOf merges literal members and ranges into one class.
func ExampleAnyCharOf() {
	f := regexgen.AnyCharOf([]string{"a", "f"}, []int{0, 9}, "_-")
	fmt.Println(f)
	// Output: [-a-f0-9_]
}

// ExampleFragment_Contains requires a digit anywhere in a word.
func ExampleFragment_Contains() {
	p := regexgen.MustCompile(
		regexgen.StartOfLine(),
		regexgen.Words().Contains(regexgen.Anything().Lazy(), regexgen.Digital()),
		regexgen.EndOfLine(),
	)

	fmt.Println(p)
	fmt.Println(p.MatchString("abc1"), p.MatchString("abc"))
	// Output:
	// ^(?=.*?\d)\w+$
	// true false
}

// ExamplePattern_ExtractAll collects every match when SearchAll is set.
func ExamplePattern_ExtractAll() {
	p := regexgen.MustCompile(
		regexgen.Capture(regexgen.Label("key"), regexgen.Words()),
		"=",
		regexgen.Capture(regexgen.Label("value"), regexgen.Digital().Many()),
		regexgen.SearchAll(),
	)

	for _, m := range p.ExtractAll("a=1, b=22") {
		fmt.Println(m["key"], m["value"])
	}
	// Output:
	// a 1
	// b 22
}

// ExamplePattern_Replace swaps the parts of an address.
func ExamplePattern_Replace() {
	p := regexgen.MustCompile(
		regexgen.Capture(regexgen.Label("user"), regexgen.Words()),
		"@",
		regexgen.Capture(regexgen.Label("host"), regexgen.Words()),
		regexgen.SearchAll(),
	)

	fmt.Println(p.Replace("root@localhost, me@box", "${host}:${user}"))
	// Output: localhost:root, box:me
}

// ExamplePattern_ReplaceFunc upper-cases every match.
func ExamplePattern_ReplaceFunc() {
	p := regexgen.MustCompile(regexgen.Capture(regexgen.Label("w"), regexgen.Words()), regexgen.SearchAll())

	out := p.ReplaceFunc("go fmt", func(captures map[string]string, _ int, _ string) string {
		return strings.ToUpper(captures["w"])
	})
	fmt.Println(out)
	// Output: GO FMT
}

// ExamplePattern_Warnings shows a soft failure surfaced on the pattern.
func ExamplePattern_Warnings() {
	p := regexgen.MustCompile(regexgen.Capture("a"), regexgen.SameAs("missing"))
	fmt.Println(p)
	for _, w := range p.Warnings() {
		fmt.Println(w.Kind)
	}
	// Output:
	// (a)
	// UnresolvedReference
}
