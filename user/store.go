package user

import (
	"context"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the user list.
	StorageKey   = "user-storage"
	storageField = "users"
	version      = 0
)

// UpdateSetter is a function that updates a user field.
type UpdateSetter = entitystore.Setter[User]

// Store defines the user list persistence operations.
type Store interface {
	entitystore.Repository[User]

	// GetByEmail returns the first user with the email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (User, bool)
}

type store struct {
	*entitystore.Store[User]
}

// NewStore opens the user list store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	s, err := entitystore.Open(ctx, slots, log, entitystore.Options[User]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(u *User) string { return u.ID },
		Seed:    Seed,
	})
	if err != nil {
		return nil, err
	}
	return &store{Store: s}, nil
}

func (s *store) GetByEmail(ctx context.Context, email string) (User, bool) {
	email = strings.TrimSpace(email)
	found := s.Find(ctx, func(u User) bool { return strings.EqualFold(u.Email, email) })
	if len(found) == 0 {
		return User{}, false
	}
	return found[0], true
}
