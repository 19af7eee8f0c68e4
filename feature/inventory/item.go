package inventory

import (
	"fmt"
	"strings"
	"time"
)

// DamagedLabel is the condition marker used by the primary source and by reports.
const DamagedLabel = "damaged"

// Item is one joined inventory record.
type Item struct {
	ID           string
	Manufacturer string
	Type         string
	Damaged      bool

	// Price is only meaningful when HasPrice is set.
	Price    float64
	HasPrice bool

	// ServiceDate is the next required service date. Only meaningful when
	// HasServiceDate is set.
	ServiceDate    time.Time
	HasServiceDate bool
}

// PriceValue returns the price or ErrUnresolvedField.
func (i Item) PriceValue() (float64, error) {
	if !i.HasPrice {
		return 0, fmt.Errorf("item %s: price: %w", i.ID, ErrUnresolvedField)
	}
	return i.Price, nil
}

// ServiceDateValue returns the service date or ErrUnresolvedField.
func (i Item) ServiceDateValue() (time.Time, error) {
	if !i.HasServiceDate {
		return time.Time{}, fmt.Errorf("item %s: service date: %w", i.ID, ErrUnresolvedField)
	}
	return i.ServiceDate, nil
}

// InService reports whether the service date has not passed at now.
func (i Item) InService(now time.Time) (bool, error) {
	date, err := i.ServiceDateValue()
	if err != nil {
		return false, err
	}
	return !date.Before(now), nil
}

// ConditionLabel is "damaged" for damaged items and empty otherwise.
func (i Item) ConditionLabel() string {
	if i.Damaged {
		return DamagedLabel
	}
	return ""
}

// IsDamagedFlag reports whether a raw condition value marks an item as damaged.
func IsDamagedFlag(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), DamagedLabel)
}
