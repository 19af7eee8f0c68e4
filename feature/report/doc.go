// Package report writes the inventory reports.
//
// Four reports are generated from the same joined inventory, each with its own
// filter and ordering:
//
//   - FullInventory: every item, by manufacturer ascending.
//   - <type>Inventory: one file per distinct item type, by item id ascending.
//   - PastServiceDateInventory: service date before now, oldest first.
//   - DamagedInventory: damaged items, most expensive first, no condition column.
//
// Ties keep the inventory (primary source) order.
//
// The Generator prepares the output directory once, writes every report through
// a Sink (CSV or XLSX) and records an Outcome per file. A report that fails does
// not stop the others. Optionally the run is described in manifest.yaml and the
// files are uploaded to object storage by a Publisher.
package report
