package bugreport

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the bug report list.
	StorageKey   = "bug-report-storage"
	storageField = "bugReports"
	version      = 0

	// IDPrefix prefixes generated bug identifiers.
	IDPrefix = "BUG"
)

// UpdateSetter is a function that updates a bug report field.
type UpdateSetter = entitystore.Setter[BugReport]

// Store defines the bug report persistence operations.
type Store interface {
	entitystore.Repository[BugReport]
}

// NewStore opens the bug report store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	return entitystore.Open(ctx, slots, log, entitystore.Options[BugReport]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(b *BugReport) string { return b.ID },
		Seed:    Seed,
	})
}
