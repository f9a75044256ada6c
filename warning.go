package regexgen

// WarningKind classifies a soft failure found while building or generating a
// pattern. None of them stops generation: the offending input degrades to the
// most conservative fragment (usually an empty one) and the warning surfaces
// on the compiled Pattern.
type WarningKind int

const (
	// InvalidArgument reports a value of the wrong type or out of range
	// passed to a fragment constructor or decorator.
	InvalidArgument WarningKind = iota + 1

	// UnresolvedReference reports a back-reference whose label was not
	// registered earlier in the same generation pass.
	UnresolvedReference

	// RedundantModifier reports a modifier supplied more than once.
	RedundantModifier

	// DegenerateAlternation reports an alternation with fewer than two
	// branches.
	DegenerateAlternation

	// UnsafeClassMember reports a character class member that is not a
	// single class character, a valid range pair or a nested class.
	// The member is dropped.
	UnsafeClassMember

	// IgnoredDecoration reports a quantifier, lookahead or negation that
	// could not be carried into a character class.
	IgnoredDecoration
)

// String returns the name of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case UnresolvedReference:
		return "UnresolvedReference"
	case RedundantModifier:
		return "RedundantModifier"
	case DegenerateAlternation:
		return "DegenerateAlternation"
	case UnsafeClassMember:
		return "UnsafeClassMember"
	case IgnoredDecoration:
		return "IgnoredDecoration"
	default:
		return "Unknown"
	}
}

// Warning is a human-readable diagnostic collected during generation.
type Warning struct {
	Kind    WarningKind
	Message string
}

// String formats the warning as "Kind: message".
func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

func warning(kind WarningKind, message string) Warning {
	return Warning{Kind: kind, Message: message}
}
