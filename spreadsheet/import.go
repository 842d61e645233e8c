package spreadsheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Import parses the first sheet of r into records. The first row is the
// header; cells under unrecognized headers are ignored and recognized
// columns that are missing or empty take their Default. Any parse failure
// returns an error and no records.
func Import[T any](ctx context.Context, r io.Reader, format Format, cols []Column[T]) ([]T, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(r)
	case FormatCSV:
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}

	byHeader := make(map[string]int, len(cols))
	for i, c := range cols {
		byHeader[normalizeHeader(c.Header)] = i
	}

	// position[i] is the cell index feeding cols[i], or -1.
	position := make([]int, len(cols))
	for i := range position {
		position[i] = -1
	}
	recognized := 0
	for cell, h := range rows[0] {
		if i, ok := byHeader[normalizeHeader(h)]; ok && position[i] == -1 {
			position[i] = cell
			recognized++
		}
	}
	if recognized == 0 {
		return nil, ErrNoRecognizedHeaders
	}

	records := make([]T, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		var rec T
		for i, c := range cols {
			if c.Set == nil {
				continue
			}
			value := ""
			if p := position[i]; p >= 0 && p < len(row) {
				value = strings.TrimSpace(row[p])
			}
			if value == "" && c.Default != nil {
				value = c.Default()
			}
			c.Set(&rec, value)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Appender is satisfied by every entity store.
type Appender[T any] interface {
	AddAll(ctx context.Context, records []T) error
}

// ImportInto parses r and appends the records to store in one batch.
func ImportInto[T any](ctx context.Context, store Appender[T], r io.Reader, format Format, cols []Column[T]) (int, error) {
	records, err := Import(ctx, r, format, cols)
	if err != nil {
		return 0, err
	}
	if err := store.AddAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Short rows take column defaults, as blank trailing cells do in xlsx.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}
