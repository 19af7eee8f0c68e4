// Package inventory builds the joined inventory from its three sources.
//
// The primary source defines the items (identifier, manufacturer, type and an
// optional "damaged" marker). The price and service date sources are keyed by the
// same identifier and are joined onto the items in that fixed order:
//
//  1. Manufacturers: id, manufacturer, type[, condition]
//  2. Prices:        id, price
//  3. Service dates: id, month/day/year
//
// Values are parsed once, at load time. A price or service date row for an
// identifier the primary source does not know is an ErrUnknownItem; a row with
// the wrong shape is an ErrMalformedRow. Either aborts the build.
//
// An item without a price or service date row keeps that field unresolved. The
// accessors PriceValue and ServiceDateValue report ErrUnresolvedField, so the
// failure surfaces where the value is used.
//
// The resulting Inventory is read-only and iterates in primary source order.
package inventory
