package query

// Config holds configuration for the interactive query command.
type Config struct {
	// MetricsFile is an optional Prometheus textfile written when the session ends.
	MetricsFile string `mapstructure:"metrics_file" default:""`
}
