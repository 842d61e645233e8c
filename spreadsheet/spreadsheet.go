// Package spreadsheet exports entity lists to .xlsx workbooks and imports
// them back from .xlsx or .csv files. Both directions are driven by an
// explicit column table per entity type.
package spreadsheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/jinzhu/now"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither spreadsheets nor CSV.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

	// ErrMalformed wraps any failure to parse an uploaded file.
	ErrMalformed = errors.New("malformed spreadsheet")

	// ErrNoRecognizedHeaders is returned when the header row matches no column.
	ErrNoRecognizedHeaders = errors.New("no recognized column headers")
)

// DateLayout is the layout of date-only fields.
const DateLayout = "2006-01-02"

// ContentType is the MIME type of exported workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Format identifies the encoding of an import file.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromFilename picks the import format from a file extension. Legacy
// .xls uploads are read as xlsx containers.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Column maps one spreadsheet column to a record field.
type Column[T any] struct {
	// Header is the human-readable column title.
	Header string

	// Get renders the field for export.
	Get func(*T) string

	// Set stores an imported cell. Nil for export-only columns.
	Set func(*T, string)

	// Default supplies the value for empty or missing cells on import.
	// Nil means the empty string.
	Default func() string
}

// Today returns the current date formatted with DateLayout.
func Today() string {
	return Date(time.Now())
}

// Date formats the day of t with DateLayout.
func Date(t time.Time) string {
	return now.With(t).BeginningOfDay().Format(DateLayout)
}

// PlaceholderID returns a Default that generates a placeholder identifier.
func PlaceholderID(prefix string) func() string {
	return func() string {
		return idgen.Placeholder(prefix)
	}
}

// Filename returns "<prefix>_<yyyy-mm-dd>.xlsx" for the day of t.
func Filename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.With(t).BeginningOfDay().Format(DateLayout))
}
