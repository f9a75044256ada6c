package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coregx/regexgen"
	"github.com/coregx/regexgen/recipe"
)

var recipeName string

var buildCmd = &cobra.Command{
	Use:   "build <recipe file>",
	Short: "Print the pattern generated for each recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuild(cmd.OutOrStdout(), logger, args[0], recipeName); err != nil {
			logger.Error("Failed to build recipes", zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	buildCmd.Flags().StringVarP(&recipeName, "recipe", "r", "", "Only build the named recipe")
}

func runBuild(w io.Writer, logger *zap.Logger, path, only string) error {
	recipes, err := loadRecipes(path, only)
	if err != nil {
		return err
	}
	config, err := compileConfig(logger)
	if err != nil {
		return err
	}

	for _, r := range recipes {
		p, warnings, err := r.Compile(config)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, p, p.Flags(), p.Engine()); err != nil {
			return err
		}
		for _, warn := range warnings {
			if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadRecipes returns the recipes in path, or only the one called only.
func loadRecipes(path, only string) ([]*recipe.Recipe, error) {
	f, err := recipe.Load(path)
	if err != nil {
		return nil, err
	}
	if only != "" {
		r, ok := f.Lookup(only)
		if !ok {
			return nil, fmt.Errorf("%s: no recipe named %q", path, only)
		}
		return []*recipe.Recipe{r}, nil
	}
	out := make([]*recipe.Recipe, len(f.Recipes))
	for i := range f.Recipes {
		out[i] = &f.Recipes[i]
	}
	return out, nil
}

func compileRecipe(r *recipe.Recipe, config regexgen.Config) (*regexgen.Pattern, error) {
	p, _, err := r.Compile(config)
	return p, err
}
