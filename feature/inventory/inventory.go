package inventory

// Inventory is the read-only joined record set of one run.
// Iteration follows the insertion order of the primary source.
type Inventory struct {
	items map[string]Item
	order []string
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Get returns the item with the given identifier.
func (inv *Inventory) Get(id string) (Item, bool) {
	item, ok := inv.items[id]
	return item, ok
}

// Items returns a copy of all items in insertion order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.items[id])
	}
	return out
}
