// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for the inventory-manager commands.
//
// # Run Correlation
//
// Every command invocation gets a run identifier (NewRunID). WithRun attaches it
// to the logger so that load, query and report entries of one run can be
// correlated, and the same identifier names the published report folder.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRun(log, logger.NewRunID())
//	log.Info("Inventory loaded", zap.Int("items", n))
package logger
