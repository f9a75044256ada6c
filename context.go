package regexgen

import (
	"strconv"

	"github.com/coregx/coregex"
)

// wrapLevel tells a fragment whether its rendering has to be protected with a
// non-capturing group before the caller splices it into a larger expression.
type wrapLevel int

const (
	// wrapNone: the fragment is the only thing in its slot.
	wrapNone wrapLevel = iota

	// wrapIfAlternation: siblings are concatenated directly to the
	// fragment, so an alternation must protect itself.
	wrapIfAlternation

	// wrapAlways: a quantifier follows the fragment's body.
	wrapAlways
)

// genContext is the mutable state of a single generation pass. It is created
// by Generate, threaded through the fragment tree and dropped afterwards;
// fragments never hold on to it.
type genContext struct {
	// captures maps capture index to label. Index 0 is the whole match.
	// Anonymous slots (captures inside raw patterns) hold "".
	captures []string
	warnings []Warning

	// backtracking is set when the output uses constructs the RE2 engine
	// cannot execute (lookaheads, back-references).
	backtracking bool
}

func newGenContext() *genContext {
	return &genContext{captures: []string{"0"}}
}

func (c *genContext) warn(ws ...Warning) {
	c.warnings = append(c.warnings, ws...)
}

// register assigns the next capture index. An empty label is replaced by the
// index itself, so unlabeled captures can be referenced by number.
func (c *genContext) register(label string) int {
	index := len(c.captures)
	if label == "" {
		label = strconv.Itoa(index)
	}
	c.captures = append(c.captures, label)
	return index
}

func (c *genContext) registerAnonymous() {
	c.captures = append(c.captures, "")
}

// lookup returns the index of the first capture registered under label, or -1.
// The whole-match sentinel and anonymous slots never resolve.
func (c *genContext) lookup(label string) int {
	if label == "" {
		return -1
	}
	for i := 1; i < len(c.captures); i++ {
		if c.captures[i] == label {
			return i
		}
	}
	return -1
}

var (
	// unitTerm matches expressions that a quantifier can follow without
	// grouping: a single character, an escape, a class or a back-reference.
	unitTerm = coregex.MustCompile(`^(?:(?s:.)|\\[bBdDfnrsStvwW0]|\\x[0-9A-Fa-f]{2}|\\u[0-9A-Fa-f]{4}|\\c[A-Za-z]|\\[$()*+.?\[\\^{|\]}/-]|\[(?:\\.|[^\]\\])*\]|\\[1-9][0-9]?)$`)

	// classEscape matches escapes that keep their meaning inside a bracket
	// expression.
	classEscape = coregex.MustCompile(`^\\(?:[dDsSwWfnrtv0]|x[0-9A-Fa-f]{2}|u[0-9A-Fa-f]{4}|c[A-Za-z]|[^0-9A-Za-z])$`)
)

func isUnitTerm(expr string) bool {
	return unitTerm.MatchString(expr)
}

// wrapUnit groups expr unless it already is a unit term.
func wrapUnit(expr string) string {
	if isUnitTerm(expr) {
		return expr
	}
	return "(?:" + expr + ")"
}
