// Package utils provides common conversion helpers for the inventory-manager application.
// It parses the textual price and date fields of the source files and formats them
// back for reports, so every package agrees on the same layouts.
package utils
