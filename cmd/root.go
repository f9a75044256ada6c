package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coregx/regexgen"
)

var (
	verbose      bool
	strategyName string
	matchTimeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "regexgen",
	Short: "regexgen - build and test regular expressions from YAML recipes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log generated patterns and warnings")
	rootCmd.PersistentFlags().StringVar(&strategyName, "strategy", "auto", "Engine: auto, coregex or backtrack")
	rootCmd.PersistentFlags().DurationVar(&matchTimeout, "timeout", 0, "Match timeout for the backtracking engine (0 = none)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(extractCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}

// compileConfig builds the regexgen configuration from the global flags.
func compileConfig(logger *zap.Logger) (regexgen.Config, error) {
	config := regexgen.DefaultConfig()
	switch strategyName {
	case "", "auto":
		config.Strategy = regexgen.UseAuto
	case "coregex":
		config.Strategy = regexgen.UseCoregex
	case "backtrack":
		config.Strategy = regexgen.UseBacktracker
	default:
		return config, fmt.Errorf("unknown strategy %q", strategyName)
	}
	config.MatchTimeout = matchTimeout
	if logger != nil {
		config.Logger = logger
	}
	return config, config.Validate()
}
