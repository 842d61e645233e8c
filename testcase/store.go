package testcase

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the test case list.
	StorageKey   = "test-case-storage"
	storageField = "testCases"
	version      = 0
)

// UpdateSetter is a function that updates a test case field.
type UpdateSetter = entitystore.Setter[TestCase]

// Store defines the test case persistence operations.
type Store interface {
	entitystore.Repository[TestCase]
}

// NewStore opens the test case store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	return entitystore.Open(ctx, slots, log, entitystore.Options[TestCase]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(tc *TestCase) string { return tc.ID },
		Seed:    Seed,
	})
}
