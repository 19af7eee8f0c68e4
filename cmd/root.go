package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-manager/core/config"
	"inventory-manager/core/logger"
	"inventory-manager/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-manager",
	Short: "Inventory query and report tool",
	Long: `Inventory Manager joins the manufacturer, price and service date lists into one
inventory. It answers interactive lookups and writes sorted inventory reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML config file")
}

// app bundles what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".", configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	runID := logger.NewRunID()
	return &app{cfg: cfg, logger: logger.WithRun(logg, runID), runID: runID}, nil
}

// clock returns a fixed time when asOf is set, time.Now otherwise.
func clock(asOf string) (func() time.Time, error) {
	if asOf == "" {
		return time.Now, nil
	}
	t, err := utils.ToDate(asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
	}
	return func() time.Time { return t }, nil
}
