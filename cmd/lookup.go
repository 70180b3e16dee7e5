package cmd

import (
	"context"
	"fmt"
	"strings"

	"tataru/core/utils"
	"tataru/feature/lookup"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <name or id>",
	Short: "Look up an item by name or id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, strings.Join(args, " "), lookup.ModeSearch)
	},
}

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <name or id>",
	Short: "Fetch the current market price of an item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, strings.Join(args, " "), lookup.ModePrice)
	},
}

// setEmojiCmd represents the setemoji command
var setEmojiCmd = &cobra.Command{
	Use:   "setemoji <id> <emoji>",
	Short: "Annotate a cached item with an emoji",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := utils.ParseID(args[0])
		if !ok {
			return fmt.Errorf("%w: %q is not an item id", lookup.ErrInvalidQuery, args[0])
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		it, err := a.lookup.SetEmoji(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), it)
		}
		fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
		return nil
	},
}

func runLookup(cmd *cobra.Command, query string, mode lookup.Mode) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	var res *lookup.Result
	if mode == lookup.ModePrice {
		res, err = a.lookup.Price(ctx, query)
	} else {
		res, err = a.lookup.Search(ctx, query)
	}
	if err != nil {
		return withSuggestions(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	if mode == lookup.ModePrice {
		printPrice(cmd.OutOrStdout(), res)
	} else {
		printResult(cmd.OutOrStdout(), res)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{searchCmd, priceCmd, setEmojiCmd} {
		c.Flags().Bool("json", false, "Output the result as JSON")
		RootCmd.AddCommand(c)
	}
}
