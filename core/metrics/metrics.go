package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects run statistics for the inventory commands in a private registry.
type Metrics struct {
	itemsLoaded    *prometheus.GaugeVec
	reportRows     *prometheus.GaugeVec
	reportFailures *prometheus.CounterVec
	queries        *prometheus.CounterVec
	registry       *prometheus.Registry
}

// New creates a new Metrics instance with a private Prometheus registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	itemsLoaded := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_source_rows_loaded",
			Help: "Rows loaded per inventory source",
		},
		[]string{"source"},
	)

	reportRows := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_report_rows",
			Help: "Data rows written per report",
		},
		[]string{"report"},
	)

	reportFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_report_failures_total",
			Help: "Reports that failed to generate or publish",
		},
		[]string{"report"},
	)

	queries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_queries_total",
			Help: "Interactive queries by outcome",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(itemsLoaded, reportRows, reportFailures, queries)

	return &Metrics{
		itemsLoaded:    itemsLoaded,
		reportRows:     reportRows,
		reportFailures: reportFailures,
		queries:        queries,
		registry:       registry,
	}
}

// SourceLoaded records the number of rows read from a source.
func (m *Metrics) SourceLoaded(source string, rows int) {
	if m == nil {
		return
	}
	m.itemsLoaded.WithLabelValues(source).Set(float64(rows))
}

// ReportWritten records the number of data rows of a report.
func (m *Metrics) ReportWritten(report string, rows int) {
	if m == nil {
		return
	}
	m.reportRows.WithLabelValues(report).Set(float64(rows))
}

// ReportFailed counts a failed report.
func (m *Metrics) ReportFailed(report string) {
	if m == nil {
		return
	}
	m.reportFailures.WithLabelValues(report).Inc()
}

// QueryAnswered counts a query by outcome (found, no_match, invalid, error).
func (m *Metrics) QueryAnswered(outcome string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes all metrics in the Prometheus text format, for node_exporter's
// textfile collector. An empty path is a no-op.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
