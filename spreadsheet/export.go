package spreadsheet

import (
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-workbench/metrics"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Export writes records to a single-sheet workbook: one header row from
// cols, then one row per record. An empty list yields a header-only workbook.
func Export[T any](sheet string, records []T, cols []Column[T]) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	if len(cols) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("failed to create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(cols), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("failed to style header row: %w", err)
		}
	}

	for r := range records {
		row := make([]interface{}, len(cols))
		for i, c := range cols {
			if c.Get != nil {
				row[i] = c.Get(&records[r])
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	metrics.Exports.WithLabelValues("xlsx").Inc()
	return buf.Bytes(), nil
}
