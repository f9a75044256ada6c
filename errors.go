package regexgen

import (
	"errors"
	"fmt"

	"github.com/coregx/regexgen/internal/matcher"
)

// Common compilation errors
var (
	// ErrUnsupported indicates a pattern that needs backtracking (lookaheads,
	// back-references) was forced onto the RE2 engine with UseCoregex.
	ErrUnsupported = matcher.ErrUnsupported

	// ErrInvalidConfig indicates invalid configuration was provided.
	// Every *ConfigError matches it with errors.Is.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CompileError reports a generated pattern that the selected engine rejected.
// Generation itself never fails; see Warning for soft failures.
type CompileError struct {
	Pattern string
	Engine  Strategy
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("regexgen: %s cannot compile %q: %v", e.Engine, e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexgen: invalid config: " + e.Field + ": " + e.Message
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
