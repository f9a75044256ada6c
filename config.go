package regexgen

import (
	"time"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
	"go.uber.org/zap"

	"github.com/coregx/regexgen/internal/matcher"
)

// Strategy names the engine that executes a compiled Pattern.
type Strategy = matcher.Strategy

const (
	// UseAuto lets Compile pick the engine. It is the zero value of
	// Config.Strategy and is never reported by Pattern.Engine.
	UseAuto = matcher.UseAuto

	// UseCoregex runs the pattern on the coregex engine. Patterns with
	// lookaheads or back-references cannot use it.
	UseCoregex = matcher.UseCoregex

	// UseBacktracker runs the pattern on the regexp2 backtracking engine
	// in ECMAScript mode.
	UseBacktracker = matcher.UseBacktracker
)

// Config controls how generated patterns are compiled and executed.
//
// Example:
//
//	config := regexgen.DefaultConfig()
//	config.Strategy = regexgen.UseBacktracker
//	config.MatchTimeout = 50 * time.Millisecond
//	p, err := regexgen.CompileWithConfig(config, regexgen.Text("a").Many())
type Config struct {
	// Strategy forces an engine. UseAuto (the default) selects coregex
	// whenever the pattern allows it.
	Strategy Strategy

	// Coregex tunes the coregex engine.
	// Default: coregex.DefaultConfig()
	Coregex meta.Config

	// MatchTimeout bounds a single match on the backtracking engine.
	// A match that times out is reported as no match.
	// Default: 0 (no limit)
	MatchTimeout time.Duration

	// Logger receives the generated pattern, the selected engine and every
	// generation warning.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return Config{
		Strategy: UseAuto,
		Coregex:  coregex.DefaultConfig(),
		Logger:   zap.NewNop(),
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError describing the first invalid field.
func (c Config) Validate() error {
	if !c.Strategy.Valid() {
		return &ConfigError{
			Field:   "Strategy",
			Message: "must be UseAuto, UseCoregex or UseBacktracker",
		}
	}
	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}
	if c.Strategy != UseBacktracker {
		if err := c.Coregex.Validate(); err != nil {
			return &ConfigError{
				Field:   "Coregex",
				Message: err.Error(),
			}
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) matcherOptions(flags Flags) matcher.Options {
	return matcher.Options{
		IgnoreCase:   flags.IgnoreCase,
		Multiline:    flags.Multiline,
		Coregex:      c.Coregex,
		MatchTimeout: c.MatchTimeout,
	}
}
