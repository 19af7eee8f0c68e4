package cmd

import (
	"fmt"

	"inventory-manager/core/metrics"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/query"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// queryCmd represents the interactive query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Interactively look up the best item by manufacturer and type",
	Long: `Loads the inventory and prompts for "<manufacturer> <item type>". Prints the most
expensive in-service, undamaged match and a similar item from another manufacturer.
Enter q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		m := metrics.New()
		inv, err := inventory.LoadFiles(cmd.Context(), rt.cfg.Source, rt.logger, m)
		if err != nil {
			return err
		}

		session := query.NewSession(inv, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger, m, now)
		runErr := session.Run(cmd.Context())

		if err := m.WriteFile(rt.cfg.Query.MetricsFile); err != nil {
			rt.logger.Warn("Failed to write metrics file", zap.Error(err))
		}
		if runErr != nil {
			return fmt.Errorf("query session ended: %w", runErr)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().String("as-of", "", "evaluate service dates against this date (M/D/YYYY) instead of now")
	RootCmd.AddCommand(queryCmd)
}
