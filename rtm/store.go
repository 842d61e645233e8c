package rtm

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the matrix.
	StorageKey   = "rtm-storage"
	storageField = "entries"
	version      = 0

	// IDPrefix prefixes generated entry identifiers.
	IDPrefix = "RTM"
)

// UpdateSetter is a function that updates an entry field.
type UpdateSetter = entitystore.Setter[Entry]

// Store defines the matrix persistence operations.
type Store interface {
	entitystore.Repository[Entry]
}

// NewStore opens the matrix store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	return entitystore.Open(ctx, slots, log, entitystore.Options[Entry]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(e *Entry) string { return e.ID },
		Seed:    Seed,
	})
}
