// Package config provides configuration management for the inventory manager.
//
// It utilizes Viper for loading configuration from environment variables, an
// optional .env file and an optional YAML config file (--config).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: paths of the manufacturer, price and service date files
//   - Report: output directory, format (csv, xlsx), manifest and metrics file
//   - Query: metrics file of the interactive session
//   - Storage: S3/MinIO credentials for publishing reports
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags. Every key can be overridden by
// an environment variable, e.g. REPORT_OUTPUT_DIR or SOURCE_PRICES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Report.OutputDir)
package config
