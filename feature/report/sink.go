package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tealeg/xlsx/v3"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Sink writes a table to a file.
type Sink interface {
	// Ext is the file extension including the dot.
	Ext() string
	// Write creates or truncates path and writes the table to it.
	Write(path string, t Table) error
}

// NewSink returns the sink for a format.
func NewSink(format string) (Sink, error) {
	switch format {
	case FormatCSV, "":
		return csvSink{}, nil
	case FormatXLSX:
		return xlsxSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

type csvSink struct{}

func (csvSink) Ext() string { return ".csv" }

func (csvSink) Write(path string, t Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}

type xlsxSink struct{}

func (xlsxSink) Ext() string { return ".xlsx" }

// sheetName stays under the 31 character limit of worksheet names.
const sheetName = "Inventory"

func (xlsxSink) Write(path string, t Table) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	addRow(sheet, t.Header)
	for _, row := range t.Rows {
		addRow(sheet, row)
	}

	return file.Save(path)
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
