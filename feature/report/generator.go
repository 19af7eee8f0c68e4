package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
)

// ErrUnsafeName is returned when a table name cannot be used as a file name.
var ErrUnsafeName = errors.New("unsafe report file name")

// ErrDuplicateName is returned when a table would overwrite a file already
// claimed in the same run, e.g. an item type "Full" against FullInventory.
var ErrDuplicateName = errors.New("duplicate report file name")

// Outcome is the result of one output file, or of a report that failed before
// producing any file (Name is empty then).
type Outcome struct {
	Report string
	Name   string
	Path   string
	Object string
	Rows   int
	Err    error
}

// Summary collects the outcomes of one run.
type Summary struct {
	RunID       string
	GeneratedAt time.Time
	Outcomes    []Outcome
}

// Failed returns the outcomes that carry an error.
func (s *Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Generator writes the inventory reports. Each report is generated
// independently: a failing report is recorded and the others still run.
type Generator struct {
	cfg       Config
	sink      Sink
	runID     string
	logger    *zap.Logger
	metrics   *metrics.Metrics
	publisher *Publisher
	reports   []Report
}

// NewGenerator creates a generator for the configured format. publisher, logger
// and m may be nil.
func NewGenerator(cfg Config, runID string, logger *zap.Logger, m *metrics.Metrics, publisher *Publisher) (*Generator, error) {
	sink, err := NewSink(cfg.Format)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		cfg:       cfg,
		sink:      sink,
		runID:     runID,
		logger:    logger,
		metrics:   m,
		publisher: publisher,
		reports:   Reports(),
	}, nil
}

// Prepare creates the output directory. It is idempotent.
func (g *Generator) Prepare() error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Run generates every report against now. The returned error joins the
// errors of all failed outputs; the summary is always returned unless the
// output directory cannot be prepared.
func (g *Generator) Run(ctx context.Context, inv *inventory.Inventory, now time.Time) (*Summary, error) {
	if err := g.Prepare(); err != nil {
		return nil, err
	}

	summary := &Summary{RunID: g.runID, GeneratedAt: now}
	items := inv.Items()

	publish := g.publisher != nil
	claimed := make(map[string]bool)
	var errs []error
	if publish {
		if err := g.publisher.Prepare(ctx); err != nil {
			g.logger.Error("Report publishing disabled", zap.Error(err))
			errs = append(errs, fmt.Errorf("publish: %w", err))
			publish = false
		}
	}

	for _, r := range g.reports {
		if err := ctx.Err(); err != nil {
			return summary, errors.Join(append(errs, err)...)
		}

		tables, err := r.Build(items, now)
		if err != nil {
			summary.Outcomes = append(summary.Outcomes, g.fail(Outcome{Report: r.Name}, err))
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))
			continue
		}

		for _, t := range tables {
			out := g.write(ctx, r.Name, t, publish, claimed)
			if out.Err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", t.Name, out.Err))
			}
			summary.Outcomes = append(summary.Outcomes, out)
		}
	}

	if g.cfg.Manifest {
		path := filepath.Join(g.cfg.OutputDir, ManifestFile)
		if err := WriteManifest(path, NewManifest(summary, g.cfg.Format)); err != nil {
			g.logger.Error("Failed to write manifest", zap.Error(err))
			errs = append(errs, fmt.Errorf("manifest: %w", err))
		} else if publish {
			if _, err := g.publisher.Publish(ctx, g.runID, path); err != nil {
				errs = append(errs, fmt.Errorf("manifest: %w", err))
			}
		}
	}

	g.logger.Info("Reports generated",
		zap.Int("outputs", len(summary.Outcomes)),
		zap.Int("failed", len(summary.Failed())),
		zap.String("dir", g.cfg.OutputDir),
	)
	return summary, errors.Join(errs...)
}

// write claims the file name of t before writing it. Names are compared case
// insensitively so outputs stay distinct on case folding file systems.
func (g *Generator) write(ctx context.Context, report string, t Table, publish bool, claimed map[string]bool) Outcome {
	out := Outcome{Report: report, Name: t.Name, Rows: len(t.Rows)}
	if t.Err != nil {
		return g.fail(out, t.Err)
	}

	if t.Name == "" || t.Name == "." || t.Name == ".." || strings.ContainsAny(t.Name, `/\`) {
		return g.fail(out, fmt.Errorf("%q: %w", t.Name, ErrUnsafeName))
	}

	key := strings.ToLower(t.Name)
	if claimed[key] {
		return g.fail(out, fmt.Errorf("%q: %w", t.Name, ErrDuplicateName))
	}
	claimed[key] = true

	out.Path = filepath.Join(g.cfg.OutputDir, t.Name+g.sink.Ext())
	if err := g.sink.Write(out.Path, t); err != nil {
		return g.fail(out, err)
	}

	if publish {
		key, err := g.publisher.Publish(ctx, g.runID, out.Path)
		if err != nil {
			return g.fail(out, err)
		}
		out.Object = key
	}

	g.metrics.ReportWritten(t.Name, out.Rows)
	g.logger.Debug("Report written", zap.String("report", t.Name), zap.Int("rows", out.Rows), zap.String("path", out.Path))
	return out
}

func (g *Generator) fail(out Outcome, err error) Outcome {
	out.Err = err
	name := out.Name
	if name == "" {
		name = out.Report
	}
	g.metrics.ReportFailed(name)
	g.logger.Error("Report failed", zap.String("report", name), zap.Error(err))
	return out
}
