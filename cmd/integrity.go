package cmd

import (
	"context"

	"tataru/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the item cache and its backend",
	Long: `Checks cached records (keys, names, dangling recipe ingredients, recipe cycles)
and the persistence backend (database schema or snapshot bucket). Outputs a summary
by default or the full report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")
		fix, _ := cmd.Flags().GetBool("fix")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())
		svc := a.integrity

		if fix {
			if err := svc.FixBackend(ctx); err != nil {
				return err
			}
			if missing := svc.CheckCache().MissingIngredients(); len(missing) > 0 {
				fixed, err := svc.FixDangling(ctx, missing)
				a.logger.Info("Fetched missing ingredients", zap.Ints("fixed", fixed))
				if err != nil {
					a.logger.Warn("Some ingredients could not be fetched", zap.Error(err))
				}
			}
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), svc.Report(ctx))
		}
		logCacheReport(a.logger, svc)
		logBackendReport(ctx, a.logger, svc)
		return nil
	},
}

func logCacheReport(logg *zap.Logger, svc *integrity.Service) {
	report := svc.CheckCache()
	if report.Status == "ok" {
		logg.Info("Cache is consistent.", zap.Int("items", report.Items), zap.Int("unhydrated", report.Unhydrated))
		return
	}
	logg.Warn("Cache problems found",
		zap.Int("items", report.Items),
		zap.Ints("key_mismatches", report.KeyMismatches),
		zap.Ints("invalid_ids", report.InvalidIDs),
		zap.Ints("empty_names", report.EmptyNames),
		zap.Ints("recipe_mismatch", report.RecipeMismatch),
		zap.Ints("missing_ingredients", report.MissingIngredients()),
	)
	for _, cycle := range report.Cycles {
		logg.Warn("Recipe cycle", zap.Ints("path", cycle))
	}
	if len(report.Dangling) > 0 {
		logg.Info("Run with --fix to fetch missing ingredients.")
	}
}

func logBackendReport(ctx context.Context, logg *zap.Logger, svc *integrity.Service) {
	report, err := svc.CheckBackend(ctx)
	if err != nil {
		logg.Error("Backend check failed", zap.Error(err))
		return
	}
	if report.Status == "ok" {
		logg.Info("Backend is intact.", zap.String("backend", report.Backend))
		if report.Bucket != nil && !report.Bucket.Snapshot {
			logg.Info("No snapshot written yet", zap.String("key", report.Bucket.Key))
		}
		return
	}

	logg.Warn("Backend problems found", zap.String("backend", report.Backend))
	if report.Schema != nil {
		for table, tblReport := range report.Schema.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Schema.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
	if report.Bucket != nil && !report.Bucket.Exists {
		logg.Warn("Bucket does not exist", zap.String("bucket", report.Bucket.Bucket))
	}
	logg.Info("Run with --fix to repair the backend.")
}

func init() {
	integrityCmd.Flags().Bool("json", false, "Output the full report as JSON")
	integrityCmd.Flags().Bool("fix", false, "Repair the backend and fetch missing ingredients")
	RootCmd.AddCommand(integrityCmd)
}
