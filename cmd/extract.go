package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <recipe file> <text...>",
	Short: "Print the captures of a recipe's matches as JSON",
	Long: `Matches the text against one recipe and prints the captures of each match.
Example) regexgen extract recipes.yaml --recipe url https://example.com`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(cmd.OutOrStdout(), logger, args[0], recipeName, strings.Join(args[1:], " ")); err != nil {
			logger.Error("Failed to extract", zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	extractCmd.Flags().StringVarP(&recipeName, "recipe", "r", "", "Recipe to match with (required)")
}

func runExtract(w io.Writer, logger *zap.Logger, path, name, text string) error {
	if name == "" {
		return errors.New("--recipe is required")
	}
	recipes, err := loadRecipes(path, name)
	if err != nil {
		return err
	}
	config, err := compileConfig(logger)
	if err != nil {
		return err
	}
	p, err := compileRecipe(recipes[0], config)
	if err != nil {
		return err
	}

	matches := p.ExtractAll(text)
	if matches == nil {
		matches = []map[string]string{}
	}
	d, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}
