package bugbash

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the bug bash list.
	StorageKey   = "bug-bash-storage"
	storageField = "bugBashes"
	version      = 0

	// IDPrefix prefixes generated bug bash identifiers.
	IDPrefix = "BASH"
)

// UpdateSetter is a function that updates a bug bash field.
type UpdateSetter = entitystore.Setter[BugBash]

// Store defines the bug bash persistence operations.
type Store interface {
	entitystore.Repository[BugBash]
}

// NewStore opens the bug bash store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	return entitystore.Open(ctx, slots, log, entitystore.Options[BugBash]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(b *BugBash) string { return b.ID },
		Seed:    Seed,
	})
}
