package report

// Config holds configuration for report generation.
type Config struct {
	// OutputDir is the directory reports are written to. It is created on demand.
	OutputDir string `mapstructure:"output_dir" default:"outputReports"`
	// Format is the file format of the reports (csv, xlsx).
	Format string `mapstructure:"format" default:"csv"`
	// Manifest writes manifest.yaml describing the run next to the reports.
	Manifest bool `mapstructure:"manifest" default:"false"`
	// MetricsFile is an optional Prometheus textfile written after the run.
	MetricsFile string `mapstructure:"metrics_file" default:""`
}
