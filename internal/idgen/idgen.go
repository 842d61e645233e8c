// Package idgen generates the identifiers used by the entity stores.
package idgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timestamp returns the millisecond Unix timestamp of t as a decimal string.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// Prefixed returns "<prefix>-<unix ms>", e.g. BUG-1718000000000.
func Prefixed(prefix string, t time.Time) string {
	return prefix + "-" + Timestamp(t)
}

// Placeholder returns an identifier for records that arrive without one,
// e.g. rows of an imported spreadsheet with an empty ID column.
func Placeholder(prefix string) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-IMP-" + short
}

// New generates a random UUID v4 string.
func New() string {
	return uuid.NewString()
}

// IsUUID checks if a string is a valid UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ISOLayout is the layout of stored timestamps, e.g. 2024-05-01T09:30:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ISO formats t in UTC with ISOLayout.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
