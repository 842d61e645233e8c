package testcase

import (
	"context"
	"testing"

	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates an in-memory slot store and a test case store over it.
func setupTestStore(t *testing.T) (*kvstore.MemorySlots, Store) {
	t.Helper()
	slots := kvstore.NewMemorySlots()
	store, err := NewStore(context.Background(), slots, logger.NewTestLogger())
	require.NoError(t, err)
	return slots, store
}

// createTestCase creates a test case with default values.
func createTestCase(id, title string) TestCase {
	return TestCase{
		ID:             id,
		Title:          title,
		Steps:          "1. do the thing",
		ExpectedResult: "the thing is done",
		Status:         StatusNotRun,
	}
}
