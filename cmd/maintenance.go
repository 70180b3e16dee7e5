package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <items.csv>",
	Short: "Import a legacy items.csv into the cache",
	Long: `Reads item_name,item_id,emoji,category,icon_url rows. New items are stored
unhydrated and completed by the next lookup or by the hydrate command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		report, err := a.lookup.Import(ctx, f)
		if err != nil {
			return err
		}
		a.logger.Info("Import finished",
			zap.String("file", args[0]),
			zap.Int("rows", report.Rows),
			zap.Int("written", report.Written),
			zap.Int("skipped", report.Skipped),
		)
		return nil
	},
}

// hydrateCmd represents the hydrate command
var hydrateCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Complete every unhydrated cache entry from the remote source",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		a.logger.Info("Hydrating cached items (this might take a while)...")
		report, err := a.lookup.HydrateAll(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Hydrate finished",
			zap.Int("checked", report.Checked),
			zap.Int("hydrated", report.Hydrated),
			zap.Int("missing", report.Missing),
			zap.Int("unavailable", report.Unavailable),
			zap.Duration("took", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(hydrateCmd)
}
