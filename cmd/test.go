package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var testCmd = &cobra.Command{
	Use:   "test <recipe file>",
	Short: "Run the cases of each recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed, err := runTest(cmd.OutOrStdout(), logger, args[0], recipeName)
		if err != nil {
			logger.Error("Failed to test recipes", zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	testCmd.Flags().StringVarP(&recipeName, "recipe", "r", "", "Only test the named recipe")
}

// runTest prints one line per failing case and a summary, and returns the
// number of failures.
func runTest(w io.Writer, logger *zap.Logger, path, only string) (int, error) {
	recipes, err := loadRecipes(path, only)
	if err != nil {
		return 0, err
	}
	config, err := compileConfig(logger)
	if err != nil {
		return 0, err
	}

	cases, failed := 0, 0
	for _, r := range recipes {
		p, err := compileRecipe(r, config)
		if err != nil {
			return failed, err
		}
		cases += len(r.Cases)
		for _, f := range r.Check(p) {
			failed++
			if _, err := fmt.Fprintf(w, "FAIL %s\n", f); err != nil {
				return failed, err
			}
		}
	}
	_, err = fmt.Fprintf(w, "%d recipes, %d cases, %d failed\n", len(recipes), cases, failed)
	return failed, err
}
