package user

import (
	"context"
	"testing"

	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates an in-memory slot store and a user store over it.
func setupTestStore(t *testing.T) (*kvstore.MemorySlots, Store) {
	t.Helper()
	slots := kvstore.NewMemorySlots()
	store, err := NewStore(context.Background(), slots, logger.NewTestLogger())
	require.NoError(t, err)
	return slots, store
}

// createTestUser creates a test user with default values.
func createTestUser(id, email, username string) User {
	return User{
		ID:       id,
		Email:    email,
		Username: username,
		Role:     RoleTester,
	}
}
