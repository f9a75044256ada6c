package recipe

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/regexgen"
)

// Failure is a case whose result differs from its expectation.
type Failure struct {
	Recipe string
	Case   int // 1-based
	Input  string
	Reason string
}

// String formats the failure for reports.
func (f Failure) String() string {
	return fmt.Sprintf("%s case %d (%q): %s", f.Recipe, f.Case, f.Input, f.Reason)
}

// Check runs the recipe's cases against p and returns the failing ones.
func (r *Recipe) Check(p *regexgen.Pattern) []Failure {
	var failures []Failure
	for i, c := range r.Cases {
		fail := func(format string, args ...any) {
			failures = append(failures, Failure{
				Recipe: r.Name,
				Case:   i + 1,
				Input:  c.Input,
				Reason: fmt.Sprintf(format, args...),
			})
		}

		want := c.Match == nil || *c.Match
		if got := p.MatchString(c.Input); got != want {
			fail("MatchString = %v, want %v", got, want)
			continue
		}

		if len(c.Captures) > 0 {
			got := selectKeys(p.Extract(c.Input), c.Captures)
			if diff := cmp.Diff(c.Captures, got); diff != "" {
				fail("captures mismatch (-want +got):\n%s", diff)
			}
		}

		if c.Replace != nil {
			if got := p.Replace(c.Input, c.Replace.Template); got != c.Replace.Want {
				fail("Replace(%q) = %q, want %q", c.Replace.Template, got, c.Replace.Want)
			}
		}
	}
	return failures
}

// selectKeys keeps the entries of got whose keys appear in want.
func selectKeys(got, want map[string]string) map[string]string {
	out := make(map[string]string, len(want))
	for k := range want {
		if v, ok := got[k]; ok {
			out[k] = v
		}
	}
	return out
}
