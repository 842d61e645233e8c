// Package kvstore provides durable key-value slots. Each entity store owns
// one slot and writes its whole collection to it after every mutation.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
	"gorm.io/gorm"
)

var (
	// ErrSlotNotFound is returned by Get when nothing has been written to the key.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidKey is returned for empty slot keys.
	ErrInvalidKey = errors.New("slot key is required")
)

// Slots is a string-valued key-value store.
type Slots interface {
	// Get returns the value stored at key, or ErrSlotNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config selects the slot backend.
type Config struct {
	Backend        string // memory, database, blob or valkey
	BlobPrefix     string
	ValkeyAddr     string
	ValkeyPassword string
	ValkeyDB       int
	ValkeyPrefix   string
}

// Deps are the already-opened resources a backend may need.
type Deps struct {
	DB    *gorm.DB
	Blobs storage.BlobStorage
}

// Open creates the Slots backend described by cfg. The returned close
// function releases backend resources and is never nil.
func Open(cfg Config, deps Deps) (Slots, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(cfg.Backend) {
	case "memory", "":
		return NewMemorySlots(), noop, nil

	case "database":
		if deps.DB == nil {
			return nil, noop, fmt.Errorf("database backend requires a database connection")
		}
		return NewGormSlots(deps.DB), noop, nil

	case "blob":
		if deps.Blobs == nil {
			return nil, noop, fmt.Errorf("blob backend requires blob storage")
		}
		return NewBlobSlots(deps.Blobs, cfg.BlobPrefix), noop, nil

	case "valkey":
		s, err := NewValkeySlots(cfg.ValkeyAddr, cfg.ValkeyPassword, cfg.ValkeyDB, cfg.ValkeyPrefix)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported slot backend: %s", cfg.Backend)
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}
