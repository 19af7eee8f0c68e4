package query

import (
	"strings"
	"time"

	"inventory-manager/feature/inventory"
)

// Result is the outcome of one query. Found is false when nothing matched.
type Result struct {
	Found bool
	Best  inventory.Item

	// HasAlternative is set when another manufacturer offers the exact same type.
	HasAlternative bool
	Alternative    inventory.Item
}

// FindBestAndAlternative returns the most expensive item that is in service, not
// damaged, and whose manufacturer and type contain the query terms (case
// insensitive). Ties keep the earliest item in inventory order.
//
// When an item matches, the alternative is the most expensive in-service,
// undamaged item of a different manufacturer whose type equals typeQuery
// exactly, ignoring case. Substring types do not qualify as alternatives.
//
// An item that reaches the service date or price check without that field
// fails the query with inventory.ErrUnresolvedField.
func FindBestAndAlternative(inv *inventory.Inventory, manufacturerQuery, typeQuery string, now time.Time) (Result, error) {
	items := inv.Items()
	manufacturerQuery = strings.ToLower(manufacturerQuery)
	typeQuery = strings.ToLower(typeQuery)

	best, found, err := maxPrice(items, now, func(item inventory.Item) bool {
		return strings.Contains(strings.ToLower(item.Manufacturer), manufacturerQuery) &&
			strings.Contains(strings.ToLower(item.Type), typeQuery)
	})
	if err != nil || !found {
		return Result{}, err
	}

	result := Result{Found: true, Best: best}

	alt, hasAlt, err := maxPrice(items, now, func(item inventory.Item) bool {
		return !strings.EqualFold(item.Manufacturer, manufacturerQuery) &&
			strings.EqualFold(item.Type, typeQuery)
	})
	if err != nil {
		return Result{}, err
	}
	result.HasAlternative = hasAlt
	result.Alternative = alt

	return result, nil
}

// maxPrice selects the highest priced in-service, undamaged item accepted by match.
func maxPrice(items []inventory.Item, now time.Time, match func(inventory.Item) bool) (inventory.Item, bool, error) {
	var (
		best      inventory.Item
		bestPrice float64
		found     bool
	)
	for _, item := range items {
		if !match(item) {
			continue
		}
		ok, err := item.InService(now)
		if err != nil {
			return inventory.Item{}, false, err
		}
		if !ok || item.Damaged {
			continue
		}
		price, err := item.PriceValue()
		if err != nil {
			return inventory.Item{}, false, err
		}
		if !found || price > bestPrice {
			best, bestPrice, found = item, price, true
		}
	}
	return best, found, nil
}
