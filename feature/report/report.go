package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory"
)

// Report names.
const (
	FullInventory            = "FullInventory"
	ItemTypeInventory        = "ItemTypeInventory"
	PastServiceDateInventory = "PastServiceDateInventory"
	DamagedInventory         = "DamagedInventory"
)

// Table is one output file: a header row followed by data rows.
// Err is set when this output alone could not be built.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
	Err    error
}

// Report turns the inventory into one or more tables.
type Report struct {
	Name  string
	Build func(items []inventory.Item, now time.Time) ([]Table, error)
}

// Reports returns the four inventory reports in generation order.
func Reports() []Report {
	return []Report{
		{Name: FullInventory, Build: buildFullInventory},
		{Name: ItemTypeInventory, Build: buildItemTypeInventory},
		{Name: PastServiceDateInventory, Build: buildPastServiceDateInventory},
		{Name: DamagedInventory, Build: buildDamagedInventory},
	}
}

// column renders one field of an item.
type column struct {
	header string
	value  func(inventory.Item) (string, error)
}

var colID = column{"Item ID", func(i inventory.Item) (string, error) {
	return i.ID, nil
}}

var colManufacturer = column{"Manufacturer", func(i inventory.Item) (string, error) {
	return i.Manufacturer, nil
}}

var colType = column{"Item Type", func(i inventory.Item) (string, error) {
	return i.Type, nil
}}

var colPrice = column{"Price", func(i inventory.Item) (string, error) {
	p, err := i.PriceValue()
	if err != nil {
		return "", err
	}
	return utils.FormatFloat(p), nil
}}

var colServiceDate = column{"Service Date", func(i inventory.Item) (string, error) {
	d, err := i.ServiceDateValue()
	if err != nil {
		return "", err
	}
	return utils.FormatDate(d), nil
}}

var colCondition = column{"Condition", func(i inventory.Item) (string, error) {
	return i.ConditionLabel(), nil
}}

var (
	fullColumns    = []column{colID, colManufacturer, colType, colPrice, colServiceDate, colCondition}
	perTypeColumns = []column{colID, colManufacturer, colPrice, colServiceDate, colCondition}
	damagedColumns = []column{colID, colManufacturer, colType, colPrice, colServiceDate}
)

// buildFullInventory lists every item.
// Order: manufacturer ascending (byte-wise); ties keep inventory order.
func buildFullInventory(items []inventory.Item, _ time.Time) ([]Table, error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b inventory.Item) int {
		return strings.Compare(a.Manufacturer, b.Manufacturer)
	})
	t, err := newTable(FullInventory, fullColumns, sorted)
	if err != nil {
		return nil, err
	}
	return []Table{t}, nil
}

// buildItemTypeInventory produces one table per distinct item type (exact match),
// named "<type>Inventory", in order of first appearance.
// Order within a table: item id ascending.
// A group that cannot be formatted fails on its own.
func buildItemTypeInventory(items []inventory.Item, _ time.Time) ([]Table, error) {
	var types []string
	groups := make(map[string][]inventory.Item)
	for _, item := range items {
		if _, ok := groups[item.Type]; !ok {
			types = append(types, item.Type)
		}
		groups[item.Type] = append(groups[item.Type], item)
	}

	tables := make([]Table, 0, len(types))
	for _, itemType := range types {
		group := groups[itemType]
		slices.SortStableFunc(group, func(a, b inventory.Item) int {
			return strings.Compare(a.ID, b.ID)
		})
		name := itemType + "Inventory"
		t, err := newTable(name, perTypeColumns, group)
		if err != nil {
			t = Table{Name: name, Err: err}
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// buildPastServiceDateInventory lists items whose service date is before now.
// Order: service date ascending (oldest first); ties keep inventory order.
// An item without a service date fails the report.
func buildPastServiceDateInventory(items []inventory.Item, now time.Time) ([]Table, error) {
	var past []inventory.Item
	for _, item := range items {
		date, err := item.ServiceDateValue()
		if err != nil {
			return nil, err
		}
		if date.Before(now) {
			past = append(past, item)
		}
	}
	slices.SortStableFunc(past, func(a, b inventory.Item) int {
		return a.ServiceDate.Compare(b.ServiceDate)
	})
	t, err := newTable(PastServiceDateInventory, fullColumns, past)
	if err != nil {
		return nil, err
	}
	return []Table{t}, nil
}

// buildDamagedInventory lists damaged items without a condition column.
// Order: price descending (most expensive first); ties keep inventory order.
// A damaged item without a price fails the report.
func buildDamagedInventory(items []inventory.Item, _ time.Time) ([]Table, error) {
	var damaged []inventory.Item
	for _, item := range items {
		if !item.Damaged {
			continue
		}
		if _, err := item.PriceValue(); err != nil {
			return nil, err
		}
		damaged = append(damaged, item)
	}
	slices.SortStableFunc(damaged, func(a, b inventory.Item) int {
		return cmp.Compare(b.Price, a.Price)
	})
	t, err := newTable(DamagedInventory, damagedColumns, damaged)
	if err != nil {
		return nil, err
	}
	return []Table{t}, nil
}

func newTable(name string, columns []column, items []inventory.Item) (Table, error) {
	t := Table{
		Name:   name,
		Header: make([]string, len(columns)),
		Rows:   make([][]string, 0, len(items)),
	}
	for i, c := range columns {
		t.Header[i] = c.header
	}
	for _, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			v, err := c.value(item)
			if err != nil {
				return Table{}, err
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
