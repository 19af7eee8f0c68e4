package inventory

import (
	"fmt"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/core/utils"

	"go.uber.org/zap"
)

// Source names used in errors, logs and metrics.
const (
	SourceItems        = "manufacturers"
	SourcePrices       = "prices"
	SourceServiceDates = "service_dates"
)

// Sources holds the raw rows of the three inputs.
type Sources struct {
	Items        [][]string
	Prices       [][]string
	ServiceDates [][]string
}

// Builder joins the three sources by item identifier.
// Passes must run in order: AddItems, AddPrices, AddServiceDates.
// A failing pass leaves the builder state untouched.
type Builder struct {
	items   map[string]*Item
	order   []string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewBuilder creates an empty builder. logger and m may be nil.
func NewBuilder(logger *zap.Logger, m *metrics.Metrics) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		items:   make(map[string]*Item),
		logger:  logger,
		metrics: m,
	}
}

// Build runs all three passes and returns the joined inventory.
func Build(src Sources, logger *zap.Logger, m *metrics.Metrics) (*Inventory, error) {
	b := NewBuilder(logger, m)
	if err := b.AddItems(src.Items); err != nil {
		return nil, err
	}
	if err := b.AddPrices(src.Prices); err != nil {
		return nil, err
	}
	if err := b.AddServiceDates(src.ServiceDates); err != nil {
		return nil, err
	}
	return b.Inventory(), nil
}

// AddItems loads the primary source: (id, manufacturer, type[, condition]).
// A repeated id replaces the earlier record and keeps its position.
func (b *Builder) AddItems(rows [][]string) error {
	staged := make([]Item, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return rowError(SourceItems, i, fmt.Errorf("expected 3 or 4 fields, got %d", len(row)))
		}
		row = utils.TrimAll(row)
		item := Item{
			ID:           row[0],
			Manufacturer: row[1],
			Type:         row[2],
		}
		if len(row) == 4 {
			item.Damaged = IsDamagedFlag(row[3])
		}
		staged = append(staged, item)
	}

	for _, item := range staged {
		if _, exists := b.items[item.ID]; !exists {
			b.order = append(b.order, item.ID)
		}
		stored := item
		b.items[item.ID] = &stored
	}

	b.logger.Debug("Loaded source", zap.String("source", SourceItems), zap.Int("rows", len(rows)), zap.Int("items", len(b.order)))
	b.metrics.SourceLoaded(SourceItems, len(rows))
	return nil
}

// AddPrices loads the price source: (id, price).
func (b *Builder) AddPrices(rows [][]string) error {
	type priceRow struct {
		item  *Item
		price float64
	}
	staged := make([]priceRow, 0, len(rows))
	for i, row := range rows {
		item, fields, err := b.lookup(SourcePrices, i, row)
		if err != nil {
			return err
		}
		price, err := utils.ToFloat(fields[1])
		if err != nil {
			return rowError(SourcePrices, i, fmt.Errorf("price: %w", err))
		}
		if price < 0 {
			return rowError(SourcePrices, i, fmt.Errorf("negative price %s", fields[1]))
		}
		staged = append(staged, priceRow{item: item, price: price})
	}

	for _, p := range staged {
		p.item.Price = p.price
		p.item.HasPrice = true
	}

	b.logger.Debug("Loaded source", zap.String("source", SourcePrices), zap.Int("rows", len(rows)))
	b.metrics.SourceLoaded(SourcePrices, len(rows))
	return nil
}

// AddServiceDates loads the service date source: (id, month/day/year).
func (b *Builder) AddServiceDates(rows [][]string) error {
	type dateRow struct {
		item *Item
		date time.Time
	}
	staged := make([]dateRow, 0, len(rows))
	for i, row := range rows {
		item, fields, err := b.lookup(SourceServiceDates, i, row)
		if err != nil {
			return err
		}
		date, err := utils.ToDate(fields[1])
		if err != nil {
			return rowError(SourceServiceDates, i, fmt.Errorf("service date: %w", err))
		}
		staged = append(staged, dateRow{item: item, date: date})
	}

	for _, d := range staged {
		d.item.ServiceDate = d.date
		d.item.HasServiceDate = true
	}

	b.logger.Debug("Loaded source", zap.String("source", SourceServiceDates), zap.Int("rows", len(rows)))
	b.metrics.SourceLoaded(SourceServiceDates, len(rows))
	return nil
}

// Inventory publishes a snapshot of the joined records.
func (b *Builder) Inventory() *Inventory {
	inv := &Inventory{
		items: make(map[string]Item, len(b.items)),
		order: append([]string(nil), b.order...),
	}
	for id, item := range b.items {
		inv.items[id] = *item
	}
	return inv
}

// lookup validates a two field (id, value) row and resolves the id.
func (b *Builder) lookup(source string, index int, row []string) (*Item, []string, error) {
	if len(row) != 2 {
		return nil, nil, rowError(source, index, fmt.Errorf("expected 2 fields, got %d", len(row)))
	}
	row = utils.TrimAll(row)
	item, ok := b.items[row[0]]
	if !ok {
		return nil, nil, fmt.Errorf("%s row %d: %q: %w", source, index+1, row[0], ErrUnknownItem)
	}
	return item, row, nil
}

func rowError(source string, index int, cause error) error {
	return fmt.Errorf("%s row %d: %w: %v", source, index+1, ErrMalformedRow, cause)
}
