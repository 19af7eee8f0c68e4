// Package metrics records run statistics of the inventory commands.
//
// The commands are short lived, so nothing is served over HTTP. Instead the
// collected values are written to a file in the Prometheus text format when a
// metrics file is configured. A nil *Metrics is valid and records nothing.
package metrics
