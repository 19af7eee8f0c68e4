package cmd

import (
	"fmt"

	"inventory-manager/core/metrics"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd represents the report generation command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the inventory reports",
	Long: `Loads the inventory and writes the full, per item type, past service date and
damaged inventory reports to the output directory. A failing report does not stop
the others; the command exits non-zero if any report failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		asOf, _ := cmd.Flags().GetString("as-of")
		now, err := clock(asOf)
		if err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if format, _ := cmd.Flags().GetString("format"); format != "" {
			rt.cfg.Report.Format = format
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			rt.cfg.Report.OutputDir = out
		}

		m := metrics.New()
		inv, err := inventory.LoadFiles(ctx, rt.cfg.Source, rt.logger, m)
		if err != nil {
			return err
		}

		var publisher *report.Publisher
		if rt.cfg.Storage.Enabled {
			client, err := storage.NewClient(rt.cfg.Storage)
			if err != nil {
				return err
			}
			publisher = report.NewPublisher(client, rt.cfg.Storage, rt.logger)
		}

		gen, err := report.NewGenerator(rt.cfg.Report, rt.runID, rt.logger, m, publisher)
		if err != nil {
			return err
		}

		summary, runErr := gen.Run(ctx, inv, now())
		if summary == nil {
			return runErr
		}
		printSummary(cmd, summary)

		if err := m.WriteFile(rt.cfg.Report.MetricsFile); err != nil {
			rt.logger.Warn("Failed to write metrics file", zap.Error(err))
		}
		if runErr != nil {
			return fmt.Errorf("%d report output(s) failed: %w", len(summary.Failed()), runErr)
		}
		return nil
	},
}

func printSummary(cmd *cobra.Command, summary *report.Summary) {
	out := cmd.OutOrStdout()
	for _, o := range summary.Outcomes {
		name := o.Name
		if name == "" {
			name = o.Report
		}
		if o.Err != nil {
			fmt.Fprintf(out, "FAIL  %-32s %v\n", name, o.Err)
			continue
		}
		fmt.Fprintf(out, "OK    %-32s %4d rows  %s\n", name, o.Rows, o.Path)
	}
}

func init() {
	reportCmd.Flags().String("as-of", "", "compare service dates against this date (M/D/YYYY) instead of now")
	reportCmd.Flags().String("format", "", "report format: csv or xlsx (overrides config)")
	reportCmd.Flags().String("out", "", "output directory (overrides config)")
	RootCmd.AddCommand(reportCmd)
}
