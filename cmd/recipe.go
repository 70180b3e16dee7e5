package cmd

import (
	"context"
	"strings"

	"tataru/feature/recipe"

	"github.com/spf13/cobra"
)

// recipeCmd represents the recipe command
var recipeCmd = &cobra.Command{
	Use:   "recipe <name or id>",
	Short: "Show the ingredient tree of an item",
	Long:  `Resolves an item like search and expands its recipe. With --full, craftable ingredients are expanded down to raw materials.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		full, _ := cmd.Flags().GetBool("full")
		amount, _ := cmd.Flags().GetInt("amount")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		report, err := a.recipe.Recipe(ctx, strings.Join(args, " "), recipe.Options{
			SelfReliance: full,
			Amount:       amount,
		})
		if err != nil {
			return withSuggestions(err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), report)
		}
		printTree(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	recipeCmd.Flags().Bool("full", false, "Expand craftable ingredients recursively")
	recipeCmd.Flags().Int("amount", 1, "Number of items wanted")
	recipeCmd.Flags().Bool("json", false, "Output the tree as JSON")
	RootCmd.AddCommand(recipeCmd)
}
