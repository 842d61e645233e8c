package testcase

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddGet(t *testing.T) {
	ctx := context.Background()

	for _, id := range []string{"TC-100", "", strings.Repeat("9", 2000), "TC/100 ?&=#%\t\"'"} {
		t.Run("id "+id[:min(len(id), 12)], func(t *testing.T) {
			_, store := setupTestStore(t)
			tc := createTestCase(id, "Edge id")
			require.NoError(t, store.Add(ctx, tc))

			got, ok := store.Get(ctx, id)
			require.True(t, ok)
			assert.Equal(t, tc, got)
		})
	}

	t.Run("duplicate ids", func(t *testing.T) {
		_, store := setupTestStore(t)
		before := store.Len()
		require.NoError(t, store.Add(ctx, createTestCase("TC-D", "first")))
		require.NoError(t, store.Add(ctx, createTestCase("TC-D", "second")))

		assert.Equal(t, before+2, store.Len())
		got, _ := store.Get(ctx, "TC-D")
		assert.Equal(t, "first", got.Title)
	})
}

func TestStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update sets only the given fields", func(t *testing.T) {
		_, store := setupTestStore(t)
		n, err := store.Update(ctx, "TC-003", SetExecution(StatusPassed, "file downloaded", "QA1", "2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, _ := store.Get(ctx, "TC-003")
		assert.Equal(t, StatusPassed, got.Status)
		assert.Equal(t, "QA1", got.ExecutedBy)
		assert.Equal(t, "Export bug reports to Excel", got.Title)
	})

	t.Run("invalid setter leaves the case untouched", func(t *testing.T) {
		_, store := setupTestStore(t)
		_, err := store.Update(ctx, "TC-001", SetTitle(""))
		assert.ErrorIs(t, err, ErrInvalidTitle)
		got, _ := store.Get(ctx, "TC-001")
		assert.Equal(t, "Login with valid credentials", got.Title)
	})

	t.Run("update of missing id changes nothing", func(t *testing.T) {
		_, store := setupTestStore(t)
		before := store.List(ctx)
		n, err := store.Update(ctx, "TC-404", SetStatus(StatusBlocked))
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, before, store.List(ctx))
	})

	t.Run("delete", func(t *testing.T) {
		_, store := setupTestStore(t)
		n, err := store.Delete(ctx, "TC-002")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 2, store.Len())

		n, err = store.Delete(ctx, "TC-002")
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 2, store.Len())
	})
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	slots, store := setupTestStore(t)
	require.NoError(t, store.Add(ctx, createTestCase("TC-P", "Persisted")))

	reopened, err := NewStore(ctx, slots, logger.NewTestLogger())
	require.NoError(t, err)
	if diff := cmp.Diff(store.List(ctx), reopened.List(ctx)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestColumns(t *testing.T) {
	ctx := context.Background()

	t.Run("export then import", func(t *testing.T) {
		data, err := spreadsheet.Export("Test Cases", Seed(), Columns())
		require.NoError(t, err)

		got, err := spreadsheet.Import(ctx, bytes.NewReader(data), spreadsheet.FormatXLSX, Columns())
		require.NoError(t, err)

		// TC-003 was never executed, so its blank date imports as today
		want := Seed()
		want[2].ExecutionDate = spreadsheet.Today()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("import mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty cells take defaults", func(t *testing.T) {
		input := "Test Case ID,Title,Status,Execution Date\n,,,\n"
		got, err := spreadsheet.Import(ctx, strings.NewReader(input), spreadsheet.FormatCSV, Columns())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0].ID, "TC-IMP-"))
		assert.Empty(t, got[0].Title)
		assert.Equal(t, StatusNotRun, got[0].Status)
		assert.Equal(t, spreadsheet.Today(), got[0].ExecutionDate)
	})
}

func TestForm(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestStore(t)
	f := NewForm(store, time.Now)

	require.NoError(t, f.Open(nil))
	require.NoError(t, f.Edit(func(tc *TestCase) { tc.Title = "No id yet" }))
	_, err := f.Submit(ctx)
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"id"}, verr.Missing)

	require.NoError(t, f.Edit(func(tc *TestCase) { tc.ID = "TC-900" }))
	got, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusNotRun, got.Status)

	_, ok := store.Get(ctx, "TC-900")
	assert.True(t, ok)
}
