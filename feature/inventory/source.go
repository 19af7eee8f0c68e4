package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"inventory-manager/core/metrics"

	"go.uber.org/zap"
)

// ReadRows reads every CSV record from r. Field counts may vary per row; the
// builder validates them.
func ReadRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// ReadFile reads all CSV rows of a file.
func ReadFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadFiles reads the three configured source files and joins them.
// Any failure aborts the load; no partial inventory is returned.
func LoadFiles(ctx context.Context, cfg Config, logger *zap.Logger, m *metrics.Metrics) (*Inventory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var src Sources
	sources := []struct {
		name string
		path string
		dest *[][]string
	}{
		{SourceItems, cfg.Manufacturers, &src.Items},
		{SourcePrices, cfg.Prices, &src.Prices},
		{SourceServiceDates, cfg.ServiceDates, &src.ServiceDates},
	}

	for _, s := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s source: %w", s.name, err)
		}
		*s.dest = rows
	}

	inv, err := Build(src, logger, m)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory: %w", err)
	}

	logger.Info("Inventory loaded", zap.Int("items", inv.Len()))
	return inv, nil
}
